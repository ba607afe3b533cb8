// Package placement implements the zig-zag checkerboard traversal that maps
// a DotCode symbol's codeword stream onto dot positions in a Bitmap.
package placement

import (
	"github.com/ahue/dotcode/internal/bitmap"
	"github.com/ahue/dotcode/internal/charpat"
)

// cursor walks the codeword stream dot by dot. The first codeword is the
// 2-bit mask indicator (0..3) and is consumed directly as raw bits rather
// than through the pattern table — it occupies exactly two dot positions,
// not nine. Every codeword after it is expanded through charpat.Patterns.
// Once the stream is exhausted the cursor emits charpat.StopPattern for the
// remaining lattice positions.
type cursor struct {
	codewords []int
	idx       int
	remaining int
	pat       uint16
	msk       uint16
}

func newCursor(codewords []int) *cursor {
	return &cursor{
		codewords: codewords,
		remaining: len(codewords) - 1,
		pat:       uint16(codewords[0]),
		msk:       0x0002,
	}
}

func (c *cursor) visit(bm *bitmap.Bitmap, x, y int) {
	if c.pat&c.msk != 0 {
		bm.Set(x, y)
	}
	c.msk >>= 1
	if c.msk == 0 {
		c.msk = 0x100
		if c.remaining > 0 {
			c.idx++
			c.remaining--
			c.pat = charpat.Patterns[c.codewords[c.idx]]
		} else {
			c.pat = charpat.StopPattern
		}
	}
}

// Fill clears bm and renders codewords onto it. codewords[0] is the mask
// indicator (0..3); the rest are the data and check codewords in order.
//
// The traversal walks the checkerboard lattice row by row from the bottom
// (odd height) or column by column from the left (even height), skipping six
// dot positions reserved near the corners, then visits those six positions
// last in a fixed stitching order that differs between odd- and
// even-height symbols.
func Fill(bm *bitmap.Bitmap, codewords []int) {
	bm.Clear()
	cols, rows := bm.Cols(), bm.Rows()
	c := newCursor(codewords)

	if rows&1 == 1 { // odd height
		x, y := 0, rows-1
		for y >= 0 {
			if (((y > 0) && (y < rows-1)) || ((x > 0) && (x < cols-2))) &&
				(((y > 1) && (y < rows-2)) || (x < cols-1)) {
				c.visit(bm, x, y)
			}
			x += 2
			if x >= cols {
				y--
				x = y & 1
			}
		}
		c.visit(bm, cols-2, 0)
		c.visit(bm, cols-2, rows-1)
		c.visit(bm, cols-1, 1)
		c.visit(bm, cols-1, rows-2)
		c.visit(bm, 0, 0)
		c.visit(bm, 0, rows-1)
	} else { // even height
		x, y := 0, 0
		for x < cols {
			if (((x > 0) && (x < cols-1)) || ((y > 0) && (y < rows-2))) &&
				(((x > 1) && (x < cols-2)) || (y < rows-1)) {
				c.visit(bm, x, y)
			}
			y += 2
			if y >= rows {
				x++
				y = x & 1
			}
		}
		c.visit(bm, cols-1, rows-2)
		c.visit(bm, 0, rows-2)
		c.visit(bm, cols-2, rows-1)
		c.visit(bm, 1, rows-1)
		c.visit(bm, cols-1, 0)
		c.visit(bm, 0, 0)
	}
}

// LightCorners force-prints the six dot positions Fill visits last,
// regardless of the codeword stream. The mask search uses this as a second
// candidate per mask: a structural variant that guarantees the corners are
// lit, tried alongside each mask in fast mode and otherwise only when no
// ordinary mask clears the scoring threshold.
func LightCorners(bm *bitmap.Bitmap) {
	cols, rows := bm.Cols(), bm.Rows()
	if rows&1 == 1 {
		bm.Set(cols-2, 0)
		bm.Set(cols-2, rows-1)
		bm.Set(cols-1, 1)
		bm.Set(cols-1, rows-2)
		bm.Set(0, 0)
		bm.Set(0, rows-1)
	} else {
		bm.Set(cols-1, rows-2)
		bm.Set(0, rows-2)
		bm.Set(cols-2, rows-1)
		bm.Set(1, rows-1)
		bm.Set(cols-1, 0)
		bm.Set(0, 0)
	}
}
