// Package dotcode implements the DotCode 2-D barcode symbology: message
// compaction (internal/compact), GF(113) Reed-Solomon error correction
// (internal/gf113), symbol-size inference (internal/sizing), structural mask
// selection (internal/mask), and checkerboard dot placement
// (internal/placement), wired together by Encode.
package dotcode

import (
	"fmt"

	"github.com/ahue/dotcode/internal/bitmap"
	"github.com/ahue/dotcode/internal/compact"
	"github.com/ahue/dotcode/internal/gf113"
	"github.com/ahue/dotcode/internal/mask"
	"github.com/ahue/dotcode/internal/placement"
	"github.com/ahue/dotcode/internal/sizing"
)

// maxCodewords bounds the total rendered codeword count (mask indicator plus
// data plus checks). It allows 16 codewords per input byte, plus 4, for a
// 4000-byte message, so any message of up to 4000 bytes fits. A message
// compacting to more codewords than this is rejected with ErrInputTooLarge.
const maxCodewords = 16*4000 + 4

// Encode compacts msg and renders it as a DotCode symbol.
func Encode(msg []byte, opts Options) (*Result, error) {
	compacted, err := compact.Encode(msg, opts.Literal)
	if err != nil {
		return nil, err
	}
	nd := len(compacted.Codewords)

	if opts.Show != nil {
		fmt.Fprintf(opts.Show, "Message Chars: %v\n", compacted.Codewords)
	}

	// Estimate the check-word count for sizing purposes only, matching the
	// reference's "nc = (nd>>1) + 3" used before the real geometry (and
	// thus the real NC) is known.
	ncEstimate := nd/2 + 3
	nwEstimate := nd + ncEstimate
	if nwEstimate+1 > maxCodewords {
		return nil, ErrInputTooLarge
	}

	if opts.Show != nil {
		fmt.Fprintf(opts.Show, "  %d data + %d checks => Minimum # dots = %d\n", nd, ncEstimate, 2+9*nwEstimate)
	}

	geom, err := sizing.Resolve(opts.Height, opts.Width, nwEstimate)
	if err != nil {
		return nil, err
	}
	if opts.Show != nil {
		fmt.Fprintf(opts.Show, "Symbol Size (HxW): %d x %d\n", geom.Rows, geom.Cols)
	}

	nData, nCheck, nWords := sizing.Capacity(geom.Rows, geom.Cols)
	if nWords+1 > maxCodewords {
		return nil, ErrInputTooLarge
	}
	if opts.Show != nil {
		fmt.Fprintf(opts.Show, "Total # dots = %d\n", (geom.Rows*geom.Cols)>>1)
	}

	if opts.SizeOnly {
		// Sizing only: rows/cols are authoritative, but no RS encoding,
		// mask search, or placement is performed and no bitmap is returned.
		return &Result{Rows: geom.Rows, Cols: geom.Cols}, nil
	}

	codewords := compacted.Codewords
	if nData > nd {
		codewords = compact.AddPads(codewords, compacted.FinalMode, nData-nd)
	}

	threshold := (geom.Rows * geom.Cols) >> 1
	var best mask.Candidate
	var cornerLit bool

	if opts.ForcedMask != nil && *opts.ForcedMask >= 0 && *opts.ForcedMask <= 7 {
		m := *opts.ForcedMask
		if m >= 4 {
			cornerLit = true
			m -= 4
		}
		wd := mask.Apply(codewords, m, nCheck, encodeRS)
		best = mask.Candidate{Mask: m, Codewords: wd}
	} else {
		best = mask.Search(geom.Cols, geom.Rows, codewords, nCheck, threshold, opts.Fast, encodeRS)
		if best.Mask >= 4 {
			cornerLit = true
			best.Mask -= 4
		}
	}

	if len(best.Codewords) > nData+nCheck+1 {
		// unreachable for valid RS output; guards against a malformed
		// encodeRS implementation overshooting its contract.
		return nil, ErrInternalOverflow
	}
	for _, v := range best.Codewords {
		if v < 0 || v >= gf113.Modulus {
			return nil, ErrInternalOverflow
		}
	}

	bm := renderBitmap(geom.Cols, geom.Rows, best.Codewords, cornerLit)

	if opts.Show != nil {
		fmt.Fprintf(opts.Show, "\nFull Char Sequence: %v\n", best.Codewords)
		fmt.Fprintf(opts.Show, "Selected Mask: %d  =>  Score = %d\n", best.Mask, mask.Score(bm))
	}

	return &Result{
		Bitmap:    bm,
		Rows:      geom.Rows,
		Cols:      geom.Cols,
		Mask:      best.Mask,
		CornerLit: cornerLit,
		Codewords: best.Codewords,
	}, nil
}

// renderBitmap places codewords onto a fresh bitmap, independent of the
// scratch bitmap internal/mask.Search used while scoring candidates.
func renderBitmap(cols, rows int, codewords []int, cornerLit bool) *bitmap.Bitmap {
	bm := bitmap.New(cols, rows)
	placement.Fill(bm, codewords)
	if cornerLit {
		placement.LightCorners(bm)
	}
	return bm
}

// encodeRS adapts internal/gf113's in-place EncodeRS to internal/mask's
// append-and-return callback contract: it extends wd by nc placeholder
// entries, lets EncodeRS fill them in, and returns the extended slice.
func encodeRS(wd []int, nd, nc int) []int {
	full := append(wd, make([]int, nc)...)
	gf113.Shared().EncodeRS(full, nd, nc)
	return full
}
