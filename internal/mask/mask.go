// Package mask implements DotCode's structural mask scoring and selection:
// scoring a candidate dot arrangement for print quality, and searching the
// four data masks (plus their corner-lit variants) for the best-scoring one.
package mask

import "github.com/ahue/dotcode/internal/bitmap"

// Weights holds the four per-mask multipliers applied to each data
// codeword's position index before modulo reduction into GF(113), per
// §5's mask table.
var Weights = [4]int{0, 3, 7, 17}

func clearColumn(bm *bitmap.Bitmap, x int) bool {
	for y := x & 1; y < bm.Rows(); y += 2 {
		if bm.Printed(x, y) {
			return false
		}
	}
	return true
}

func clearRow(bm *bitmap.Bitmap, y int) bool {
	for x := y & 1; x < bm.Cols(); x += 2 {
		if bm.Printed(x, y) {
			return false
		}
	}
	return true
}

// columnPenalty sums a penalty for runs of empty interior columns: each run
// of n consecutive empty columns (in a bitmap of Rows() positions per
// column) contributes Rows()^n, and the contributions of separate runs are
// added, so one wide gap is punished far harder than several narrow ones.
func columnPenalty(bm *bitmap.Bitmap) int {
	penalty, local := 0, 0
	rows := bm.Rows()
	for x := 1; x < bm.Cols()-1; x++ {
		if clearColumn(bm, x) {
			if local == 0 {
				local = rows
			} else {
				local *= rows
			}
		} else if local != 0 {
			penalty += local
			local = 0
		}
	}
	return penalty + local
}

func rowPenalty(bm *bitmap.Bitmap) int {
	penalty, local := 0, 0
	cols := bm.Cols()
	for y := 1; y < bm.Rows()-1; y++ {
		if clearRow(bm, y) {
			if local == 0 {
				local = cols
			} else {
				local *= cols
			}
		} else if local != 0 {
			penalty += local
			local = 0
		}
	}
	return penalty + local
}

type edgeScan struct {
	sum, first, last int
}

func (e *edgeScan) visit(pos int, printed bool) {
	if !printed {
		return
	}
	if e.first < 0 {
		e.first = pos
	}
	e.last = pos
	e.sum++
}

// Score evaluates a filled bitmap: higher is better. It combines the
// tightest of the four edge extents (penalizing a completely empty edge
// heavily and asymmetrically per edge), a count of isolated unprinted
// "cross" positions, and penalties for empty interior rows/columns.
//
// The edge penalties are intentionally asymmetric (100000/200000/400000/
// 800000 for the top/bottom/left/right edges respectively) and the scoring
// loops intentionally start interior scans at offset 1 rather than 0 —
// this mirrors the reference scorer exactly, quirks included.
func Score(bm *bitmap.Bitmap) int {
	cols, rows := bm.Cols(), bm.Rows()
	penalty := rowPenalty(bm) + columnPenalty(bm)

	top := edgeScan{first: -1, last: -1}
	for x := 0; x < cols; x += 2 {
		top.visit(x, bm.Printed(x, 0))
	}
	if top.sum == 0 {
		penalty += 100000
	}
	worst := (top.sum + top.last - top.first) * rows

	bottom := edgeScan{first: -1, last: -1}
	for x := cols & 1; x < cols; x += 2 {
		bottom.visit(x, bm.Printed(x, rows-1))
	}
	if bottom.sum == 0 {
		penalty += 200000
	}
	if v := (bottom.sum + bottom.last - bottom.first) * rows; v < worst {
		worst = v
	}

	left := edgeScan{first: -1, last: -1}
	for y := 0; y < rows; y += 2 {
		left.visit(y, bm.Printed(0, y))
	}
	if left.sum == 0 {
		penalty += 400000
	}
	if v := (left.sum + left.last - left.first) * cols; v < worst {
		worst = v
	}

	right := edgeScan{first: -1, last: -1}
	for y := rows & 1; y < rows; y += 2 {
		right.visit(y, bm.Printed(cols-1, y))
	}
	if right.sum == 0 {
		penalty += 800000
	}
	if v := (right.sum + right.last - right.first) * cols; v < worst {
		worst = v
	}

	crosses := 0
	for y := 0; y < rows; y++ {
		for x := y & 1; x < cols; x += 2 {
			if !bm.Printed(x-1, y-1) && !bm.Printed(x+1, y-1) &&
				!bm.Printed(x-1, y+1) && !bm.Printed(x+1, y+1) &&
				(!bm.Printed(x, y) ||
					(!bm.Printed(x-2, y) && !bm.Printed(x, y-2) && !bm.Printed(x+2, y) && !bm.Printed(x, y+2))) {
				crosses++
			}
		}
	}

	return worst - crosses*crosses - penalty
}
