package sizing

import "testing"

func TestResolveDefaultAspect(t *testing.T) {
	g, err := Resolve(0, 0, 3)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if (g.Rows+g.Cols)%2 == 0 {
		t.Errorf("rows+cols = %d, want odd", g.Rows+g.Cols)
	}
	if g.Rows < 7 || g.Cols < 7 {
		t.Errorf("geometry = %dx%d, want both >= 7", g.Rows, g.Cols)
	}
}

func TestResolveFixedHeight(t *testing.T) {
	g, err := Resolve(9, 0, 10)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if g.Rows != 9 {
		t.Errorf("Rows = %d, want 9", g.Rows)
	}
	if (g.Rows^g.Cols)&1 == 0 {
		t.Errorf("rows=%d cols=%d have matching parity, want opposite", g.Rows, g.Cols)
	}
}

func TestResolveFixedWidth(t *testing.T) {
	g, err := Resolve(0, 12, 10)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if g.Cols != 12 {
		t.Errorf("Cols = %d, want 12", g.Cols)
	}
}

func TestResolveExactGeometry(t *testing.T) {
	g, err := Resolve(-11, -20, 5)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if g.Rows != 11 || g.Cols != 20 {
		t.Errorf("geometry = %dx%d, want 11x20", g.Rows, g.Cols)
	}
}

func TestResolveExactGeometryRejectsEvenSum(t *testing.T) {
	_, err := Resolve(-10, -20, 5)
	if err != ErrGeometryImpossible {
		t.Errorf("err = %v, want ErrGeometryImpossible", err)
	}
}

func TestResolveMixedSignIsImpossible(t *testing.T) {
	_, err := Resolve(9, -20, 5)
	if err != ErrGeometryImpossible {
		t.Errorf("err = %v, want ErrGeometryImpossible", err)
	}
}

func TestResolveRejectsGeometryTooSmallForPayload(t *testing.T) {
	_, err := Resolve(-7, -8, 10000)
	if err != ErrGeometryImpossible {
		t.Errorf("err = %v, want ErrGeometryImpossible", err)
	}
}

func TestCapacityInvariants(t *testing.T) {
	nd, nc, nw := Capacity(9, 7)
	if nd+nc != nw {
		t.Errorf("nd+nc = %d, want nw = %d", nd+nc, nw)
	}
	dots := (9 * 7) >> 1
	if dots < 9*nw+2 {
		t.Errorf("dots = %d too small for nw = %d", dots, nw)
	}
}
