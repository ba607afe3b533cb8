package charpat

import (
	"math/bits"
	"testing"
)

func TestPatternsHaveFiveBitsSet(t *testing.T) {
	for i, p := range Patterns {
		if got := bits.OnesCount16(p); got != 5 {
			t.Errorf("Patterns[%d] = %#03x has %d bits set, want 5", i, p, got)
		}
		if p > 0x1ff {
			t.Errorf("Patterns[%d] = %#03x exceeds 9 bits", i, p)
		}
	}
}

func TestPatternsAreDistinct(t *testing.T) {
	seen := make(map[uint16]int, len(Patterns))
	for i, p := range Patterns {
		if j, ok := seen[p]; ok {
			t.Errorf("Patterns[%d] duplicates Patterns[%d] (%#03x)", i, j, p)
		}
		seen[p] = i
	}
}
