// Package plotter renders a DotCode symbol as ASCII art, for terminal
// preview without producing a BMP file.
package plotter

import (
	"fmt"
	"io"

	"github.com/ahue/dotcode/internal/bitmap"
)

// maxCol is the column at which a wide symbol's plot is truncated, matching
// the reference PlotSymbol's fixed 80-column cutoff.
const maxCol = 80

// Plot writes bm to w as a grid of "O" (printed) and " " (unprinted)
// characters, one row per bitmap row in storage order, each row framed by
// "|" and the whole plot closed with a "+" border row.
func Plot(w io.Writer, bm *bitmap.Bitmap) error {
	cols, rows := bm.Cols(), bm.Rows()
	width := cols
	if width > maxCol {
		width = maxCol
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			ch := " "
			if bm.Get(x, y) {
				ch = "O"
			}
			if _, err := io.WriteString(w, ch); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "|\n"); err != nil {
			return err
		}
	}

	for x := 0; x < cols; x++ {
		if _, err := io.WriteString(w, "+"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "+\n")
	return err
}
