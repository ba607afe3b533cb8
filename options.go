package dotcode

import (
	"io"

	"github.com/ahue/dotcode/internal/bitmap"
)

// Options controls how Encode compacts and renders a message. The zero value
// is a reasonable default: Set-switching chosen automatically, mask chosen
// automatically by exhaustive scoring, and a symbol sized to DotCode's
// default 2:3 height:width aspect ratio.
type Options struct {
	// Literal, when true, disables "#" escape processing: every byte of the
	// message is compacted as-is and FNC1/FNC2/FNC3 cannot be produced.
	Literal bool

	// ForcedMask, when non-nil, skips automatic mask selection and uses
	// *ForcedMask (0..7) directly: 0..3 select a data mask as-is, 4..7
	// select the same data mask (m-4) with the corner-lit structural
	// variant forced on, matching the reference encoder's mask_override.
	// Nil (the default) selects the best-scoring mask automatically.
	ForcedMask *int

	// Fast, when true, scores each mask together with its corner-lit
	// variant and accepts the first candidate whose score clears the
	// symbol's threshold. When false, all four ordinary masks are scored,
	// and the four corner-lit variants only when none of them clears the
	// threshold. Trades symbol quality for encode speed.
	Fast bool

	// Height and Width are geometry hints in dot rows/columns, per
	// sizing.Resolve: both zero defaults to a 2:3 aspect ratio; one zero
	// and one positive fixes that dimension and derives the other; both
	// negative requests an exact symbol size (|Height| rows, |Width|
	// cols); any other sign combination is rejected.
	Height int
	Width int

	// SizeOnly, when true, performs only sizing: Result.Rows/Cols are
	// authoritative but no RS encoding, mask search, or placement work is
	// done, and Result.Bitmap/Mask/CornerLit/Codewords are left zero.
	// False (the zero value) renders the full symbol, matching the
	// reference encoder's "fill" flag inverted to a safe default.
	SizeOnly bool

	// Show, when non-nil, receives a human-readable trail of the encoding
	// process — input codewords, minimum dot count, chosen symbol size,
	// and the selected mask's score — mirroring DotEncod.c's "show" printf
	// trail. Nil means no diagnostics are written.
	Show io.Writer
}

// ForceMask returns a copy of o requesting automatic mask selection be
// skipped in favor of the given mask index (0..7): 0..3 force a data mask
// directly, 4..7 force the same data mask (m-4) with the corner-lit variant.
func (o Options) ForceMask(m int) Options {
	o.ForcedMask = &m
	return o
}

// Result is a successfully encoded DotCode symbol.
type Result struct {
	// Bitmap is the rendered dot lattice: Bitmap.Get(x, y) reports whether
	// the dot at column x, row y is printed.
	Bitmap *bitmap.Bitmap

	// Rows and Cols are the symbol's dot-lattice dimensions.
	Rows, Cols int

	// Mask is the structural mask actually used, 0..3. Values 4..7 in the
	// reference encoder (the corner-lit variant) are folded back into
	// 0..3 here since CornerLit reports that separately.
	Mask int

	// CornerLit reports whether the six corner-stitch dots were forced lit
	// as a structural tie-breaker, independent of the codeword stream.
	CornerLit bool

	// Codewords holds the full rendered codeword stream: the mask
	// indicator at index 0, followed by data and Reed-Solomon check
	// codewords in placement order.
	Codewords []int
}
