package mask

import (
	"github.com/ahue/dotcode/internal/bitmap"
	"github.com/ahue/dotcode/internal/placement"
)

// Candidate is one trial rendering: a mask index (0..3, or 4..7 for the
// corner-lit variant of mask index-4) together with its codeword stream and
// resulting score.
type Candidate struct {
	Mask      int
	Codewords []int
	Score     int
}

// Apply weights data codewords by mask m (0..3) modulo GF(113) and returns
// the full codeword stream: the mask indicator followed by the weighted
// data words and RS check words. encodeRS must append nc check words in
// place, matching internal/gf113.Field.EncodeRS's contract.
func Apply(data []int, m int, nc int, encodeRS func(wd []int, nd, nc int) []int) []int {
	wd := make([]int, len(data)+1)
	wd[0] = m
	for i, v := range data {
		wd[i+1] = (v + i*Weights[m]) % 113
	}
	return encodeRS(wd, len(data)+1, nc)
}

// Search tries the four masks (and their corner-lit structural variants) and
// returns the best-scoring candidate. fast, when true, scores each mask
// followed by its corner-lit variant and accepts the first candidate whose
// score clears threshold; this mirrors the reference encoder's "fast" bypass
// and trades symbol quality for speed on large messages. With fast false,
// the four ordinary masks are all scored, and the four corner-lit variants
// are scored as well only when no ordinary mask clears threshold; the best
// candidate seen is returned.
//
// Masks are tried from index 3 down to 0, matching the reference order. A
// candidate replaces the current best only with a strictly higher score, so
// ties go to the candidate tried first (the higher mask index).
func Search(cols, rows int, data []int, nc int, threshold int, fast bool, encodeRS func(wd []int, nd, nc int) []int) Candidate {
	bm := bitmap.New(cols, rows)
	best := Candidate{Score: minInt}

	tryMask := func(m int, lightCorners bool) Candidate {
		wd := Apply(data, m, nc, encodeRS)
		placement.Fill(bm, wd)
		if lightCorners {
			placement.LightCorners(bm)
		}
		maskID := m
		if lightCorners {
			maskID = m + 4
		}
		return Candidate{Mask: maskID, Codewords: wd, Score: Score(bm)}
	}

	for m := 3; m >= 0; m-- {
		c := tryMask(m, false)
		if c.Score > best.Score {
			best = c
			if fast && best.Score > threshold {
				return best
			}
		}
		if fast {
			c = tryMask(m, true)
			if c.Score > best.Score {
				best = c
				if best.Score > threshold {
					return best
				}
			}
		}
	}

	if !fast && best.Score <= threshold {
		for m := 3; m >= 0; m-- {
			c := tryMask(m, true)
			if c.Score > best.Score {
				best = c
			}
		}
	}

	return best
}

const minInt = -int(^uint(0)>>1) - 1
