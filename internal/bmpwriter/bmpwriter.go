// Package bmpwriter rasterizes a DotCode bitmap into a BMP image, scaling
// each lattice dot by an X-dimension and quiet zone the way the reference
// encoder's BmpHeader/BmpImage pair does, but producing an image.Paletted
// and delegating container encoding to golang.org/x/image/bmp instead of
// hand-writing the BMP header and row padding.
package bmpwriter

import (
	"errors"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"

	"github.com/ahue/dotcode/internal/bitmap"
)

// ErrUndercutTooLarge is returned when Options.Undercut is not in
// [0, XDim-1], the same range the reference CLI enforces for "/u#".
var ErrUndercutTooLarge = errors.New("bmpwriter: undercut must be in [0, xdim-1]")

// Options controls BMP rasterization.
type Options struct {
	// XDim is the pixel size of one lattice dot's bounding square. Must be
	// at least 1; the reference CLI defaults this to 5.
	XDim int

	// Undercut shaves this many pixels off a printed dot's trailing (right
	// and bottom) edges, unless the neighboring dot in that direction is
	// also printed — simulating a printer's dot gain compensation. Must be
	// in [0, XDim-1].
	Undercut int

	// QuietZone is the blank margin, in dot-widths, added on all four
	// sides of the symbol.
	QuietZone int

	// Round selects round dots (corners clipped to an approximate circle)
	// instead of square ones.
	Round bool
}

var (
	white = color.Gray{Y: 0xff}
	black = color.Gray{Y: 0x00}
)

// Encode rasterizes bm per opts and writes a BMP image to w.
func Encode(w io.Writer, bm *bitmap.Bitmap, opts Options) error {
	if opts.XDim < 1 {
		opts.XDim = 1
	}
	if opts.Undercut < 0 || opts.Undercut >= opts.XDim {
		return ErrUndercutTooLarge
	}

	cols, rows := bm.Cols(), bm.Rows()
	qz := opts.QuietZone
	xd := opts.XDim

	width := (cols + 2*qz) * xd
	height := (rows + 2*qz) * xd

	pal := color.Palette{white, black}
	img := image.NewPaletted(image.Rect(0, 0, width, height), pal)

	radius := float64(xd-opts.Undercut) * 4.0 / 3.0

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !bm.Get(x, y) {
				continue
			}
			eastPrinted := bm.Printed(x+1, y)
			southPrinted := bm.Printed(x, y+1)

			originX := (qz + x) * xd
			originY := (qz + y) * xd
			for by := 0; by < xd; by++ {
				for bx := 0; bx < xd; bx++ {
					if bx >= xd-opts.Undercut && !eastPrinted {
						continue
					}
					if by >= xd-opts.Undercut && !southPrinted {
						continue
					}
					if opts.Round {
						xdis := manhattanOffset(bx, xd, opts.Undercut)
						ydis := manhattanOffset(by, xd, opts.Undercut)
						if float64(xdis+ydis) > radius {
							continue
						}
					}
					img.SetColorIndex(originX+bx, originY+by, 1)
				}
			}
		}
	}

	return bmp.Encode(w, img)
}

// manhattanOffset mirrors the reference's "xdis"/"ydis" computation: the
// distance of block offset p from the block's undercut-adjusted center.
func manhattanOffset(p, xdim, undercut int) int {
	d := 2*p - (xdim - undercut - 1)
	if d < 0 {
		d = -d
	}
	return d
}
