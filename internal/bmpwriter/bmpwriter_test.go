package bmpwriter_test

import (
	"bytes"
	"image"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/ahue/dotcode/internal/bitmap"
	"github.com/ahue/dotcode/internal/bmpwriter"
)

func TestEncodeProducesValidBMPOfExpectedSize(t *testing.T) {
	bm := bitmap.New(9, 7)
	bm.Set(0, 0)
	bm.Set(8, 6)

	var buf bytes.Buffer
	opts := bmpwriter.Options{XDim: 4, Undercut: 1, QuietZone: 2, Round: true}
	if err := bmpwriter.Encode(&buf, bm, opts); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding produced BMP: %v", err)
	}
	wantW := (9 + 2*2) * 4
	wantH := (7 + 2*2) * 4
	b := img.Bounds()
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestEncodeRejectsOversizedUndercut(t *testing.T) {
	bm := bitmap.New(7, 7)
	var buf bytes.Buffer
	err := bmpwriter.Encode(&buf, bm, bmpwriter.Options{XDim: 3, Undercut: 3})
	if err != bmpwriter.ErrUndercutTooLarge {
		t.Errorf("err = %v, want ErrUndercutTooLarge", err)
	}
}

func TestEncodeBlankBitmapIsAllBackground(t *testing.T) {
	bm := bitmap.New(7, 7)
	var buf bytes.Buffer
	if err := bmpwriter.Encode(&buf, bm, bmpwriter.Options{XDim: 2, QuietZone: 0}); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gray, ok := img.(*image.Paletted)
	if !ok {
		t.Fatalf("decoded image is %T, want *image.Paletted", img)
	}
	for _, p := range gray.Pix {
		if p != 0 {
			t.Fatalf("expected all-background image, found printed pixel")
		}
	}
}
