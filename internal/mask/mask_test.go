package mask

import (
	"testing"

	"github.com/ahue/dotcode/internal/bitmap"
	"github.com/ahue/dotcode/internal/placement"
)

func TestClearColumnAndRow(t *testing.T) {
	bm := bitmap.New(9, 7)
	for x := 0; x < 9; x++ {
		if !clearColumn(bm, x) {
			t.Errorf("empty bitmap: clearColumn(%d) = false", x)
		}
	}
	bm.Set(3, 1)
	if clearColumn(bm, 3) {
		t.Error("clearColumn(3) should be false after Set(3,1)")
	}
	if !clearColumn(bm, 2) {
		t.Error("clearColumn(2) should remain true")
	}
	if clearRow(bm, 1) {
		t.Error("clearRow(1) should be false after Set(3,1)")
	}
	if !clearRow(bm, 0) {
		t.Error("clearRow(0) should remain true")
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	bm := bitmap.New(9, 7)
	placement.Fill(bm, []int{1, 5, 10, 99, 42, 7})
	a := Score(bm)
	b := Score(bm)
	if a != b {
		t.Errorf("Score is not deterministic: %d != %d", a, b)
	}
}

func TestScorePenalizesEmptyBitmap(t *testing.T) {
	empty := bitmap.New(9, 7)
	filled := bitmap.New(9, 7)
	placement.Fill(filled, []int{3})
	if Score(empty) >= Score(filled) {
		t.Errorf("Score(empty)=%d should be lower than Score(fully lit)=%d", Score(empty), Score(filled))
	}
}

func TestApplyWeighting(t *testing.T) {
	data := []int{10, 20, 30}
	var gotWd []int
	var gotNd, gotNc int
	stub := func(wd []int, nd, nc int) []int {
		gotWd = append([]int(nil), wd...)
		gotNd, gotNc = nd, nc
		return append(wd, make([]int, nc)...)
	}
	wd := Apply(data, 2, 4, stub)
	if gotNd != 4 || gotNc != 4 {
		t.Errorf("encodeRS called with nd=%d nc=%d, want 4,4", gotNd, gotNc)
	}
	if gotWd[0] != 2 {
		t.Errorf("wd[0] = %d, want mask index 2", gotWd[0])
	}
	want := []int{2, (10 + 0*7) % 113, (20 + 1*7) % 113, (30 + 2*7) % 113}
	for i, v := range want {
		if gotWd[i] != v {
			t.Errorf("wd[%d] = %d, want %d", i, gotWd[i], v)
		}
	}
	if len(wd) != len(want)+4 {
		t.Errorf("len(Apply result) = %d, want %d", len(wd), len(want)+4)
	}
}

func TestSearchReturnsValidCandidate(t *testing.T) {
	identityRS := func(wd []int, nd, nc int) []int {
		return append(wd, make([]int, nc)...)
	}
	data := make([]int, 6)
	for i := range data {
		data[i] = i * 13 % 113
	}
	c := Search(9, 7, data, 4, 1<<30, false, identityRS)
	if c.Mask < 0 || c.Mask > 7 {
		t.Errorf("Mask = %d, want 0..7", c.Mask)
	}
	if len(c.Codewords) != len(data)+1+4 {
		t.Errorf("len(Codewords) = %d, want %d", len(c.Codewords), len(data)+1+4)
	}
}

func TestSearchFastStopsEarlyAboveThreshold(t *testing.T) {
	identityRS := func(wd []int, nd, nc int) []int {
		return append(wd, make([]int, nc)...)
	}
	data := make([]int, 6)
	for i := range data {
		data[i] = i * 13 % 113
	}
	c := Search(9, 7, data, 4, -1<<30, true, identityRS)
	if c.Score <= -1<<30 {
		t.Errorf("Score = %d, want > threshold", c.Score)
	}
}
