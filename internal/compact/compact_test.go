package compact

import (
	"errors"
	"testing"
)

func encodeOrFail(t *testing.T, msg string, literal bool) Result {
	t.Helper()
	r, err := Encode([]byte(msg), literal)
	if err != nil {
		t.Fatalf("Encode(%q) error: %v", msg, err)
	}
	return r
}

func TestDigitPairsUseSetC(t *testing.T) {
	r := encodeOrFail(t, "123456", false)
	want := []int{12, 34, 56}
	if !equalInts(r.Codewords, want) {
		t.Errorf("Codewords = %v, want %v", r.Codewords, want)
	}
	if r.FinalMode != CodeSetC {
		t.Errorf("FinalMode = %d, want CodeSetC", r.FinalMode)
	}
}

func TestFNC1Escape(t *testing.T) {
	r := encodeOrFail(t, "#1", false)
	if len(r.Codewords) != 1 || r.Codewords[0] != 107 {
		t.Errorf("Codewords = %v, want [107]", r.Codewords)
	}
}

func TestFNC2ECIEscape(t *testing.T) {
	// "#2" + 6 literal digits is an ECI designator (value 10500).
	r := encodeOrFail(t, "#2010500", false)
	want := []int{108, 40, 92, 64}
	if !equalInts(r.Codewords, want) {
		t.Errorf("Codewords = %v, want %v", r.Codewords, want)
	}
}

func TestSeventeenTenThenLetters(t *testing.T) {
	r := encodeOrFail(t, "1710020110ABC", false)
	if len(r.Codewords) < 4 {
		t.Fatalf("Codewords too short: %v", r.Codewords)
	}
	want := []int{100, 10, 2, 1}
	if !equalInts(r.Codewords[:4], want) {
		t.Errorf("Codewords[:4] = %v, want %v", r.Codewords[:4], want)
	}
}

func TestEmptyMessage(t *testing.T) {
	r := encodeOrFail(t, "", false)
	if len(r.Codewords) != 0 {
		t.Errorf("Codewords = %v, want empty", r.Codewords)
	}
	if r.FinalMode != CodeSetC {
		t.Errorf("FinalMode = %d, want CodeSetC", r.FinalMode)
	}
}

func TestLiteralBinaryTail(t *testing.T) {
	r := encodeOrFail(t, string([]byte{200, 201, 202}), true)
	if len(r.Codewords) != 5 {
		t.Fatalf("len(Codewords) = %d, want 5: %v", len(r.Codewords), r.Codewords)
	}
	if r.Codewords[0] != 112 {
		t.Errorf("Codewords[0] = %d, want 112 (latch to Binary mode)", r.Codewords[0])
	}
	if r.FinalMode != BinaryMode {
		t.Errorf("FinalMode = %d, want BinaryMode", r.FinalMode)
	}
}

func TestMacro05Form(t *testing.T) {
	msg := []byte{'[', ')', '>', rs, '0', '5', gs, 'A', 'B', 'C', rs, eot}
	r, err := Encode(msg, false)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := []int{106, 97, 33, 34, 35}
	if !equalInts(r.Codewords, want) {
		t.Errorf("Codewords = %v, want %v", r.Codewords, want)
	}
}

func TestMalformedEscapeIsRejected(t *testing.T) {
	_, err := Encode([]byte("#9"), false)
	if !errors.Is(err, ErrMalformedEscape) {
		t.Errorf("err = %v, want ErrMalformedEscape", err)
	}
	_, err = Encode([]byte("#"), false)
	if !errors.Is(err, ErrMalformedEscape) {
		t.Errorf("trailing '#': err = %v, want ErrMalformedEscape", err)
	}
}

func TestAddPadsBinaryFinalModeInsertsSeparator(t *testing.T) {
	got := AddPads([]int{1, 2}, BinaryMode, 3)
	want := []int{1, 2, 109, 106, 106}
	if !equalInts(got, want) {
		t.Errorf("AddPads = %v, want %v", got, want)
	}
}

func TestAddPadsNonBinaryFinalMode(t *testing.T) {
	got := AddPads([]int{1, 2}, CodeSetC, 3)
	want := []int{1, 2, 106, 106, 106}
	if !equalInts(got, want) {
		t.Errorf("AddPads = %v, want %v", got, want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
