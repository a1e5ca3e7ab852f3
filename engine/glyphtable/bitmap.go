package glyphtable

import (
	"errors"

	"golang.org/x/image/math/fixed"
)

// Errors a rasterizer reports for single glyphs. Neither of them is fatal
// for building a glyph table.
var (
	ErrGlyphMissing   = errors.New("glyph missing")
	ErrGlyphRasterize = errors.New("glyph cannot be rasterized")
)

// Rasterizer renders a single codepoint to a monochrome bitmap. If the
// font has no glyph for a codepoint, Rasterize returns an error wrapping
// ErrGlyphMissing.
type Rasterizer interface {
	Rasterize(cp rune) (*Bitmap, error)
}

// LineHeighter is implemented by rasterizers which know a face-wide line
// height in pixels. ok is false if the face does not specify one.
type LineHeighter interface {
	LineHeight() (height int, ok bool)
}

// Bitmap is a rendered glyph: a monochrome pixel matrix plus metrics.
//
// Pixels are stored row by row, each row Stride bytes wide, with the
// leftmost pixel of a byte in its most significant bit. This is the layout
// of monochrome bitmaps of most rasterizers.
//
// Left and Top are the bearings from the pen position to the top-left
// pixel, with +Y pointing upward (i.e., Top is the distance from the
// baseline up to the top row).
type Bitmap struct {
	Width, Height int
	Stride        int
	Pix           []byte
	Advance       fixed.Int26_6 // horizontal advance
	Left, Top     int
}

// NewBitmap allocates an all-off bitmap of w×h pixels.
func NewBitmap(w, h int) *Bitmap {
	stride := (w + 7) / 8
	return &Bitmap{
		Width:  w,
		Height: h,
		Stride: stride,
		Pix:    make([]byte, stride*h),
	}
}

// PixelAt is a predicate: is pixel (x, y) set? Row 0 is the top row.
func (bm *Bitmap) PixelAt(x, y int) bool {
	return bm.Pix[y*bm.Stride+x/8]&(0x80>>(x&7)) != 0
}

// Set switches pixel (x, y) on or off.
func (bm *Bitmap) Set(x, y int, on bool) {
	mask := byte(0x80 >> (x & 7))
	if on {
		bm.Pix[y*bm.Stride+x/8] |= mask
	} else {
		bm.Pix[y*bm.Stride+x/8] &^= mask
	}
}

// valid checks that all pixels are addressable.
func (bm *Bitmap) valid() bool {
	if bm.Width < 0 || bm.Height < 0 {
		return false
	}
	if bm.Width == 0 || bm.Height == 0 {
		return true
	}
	return bm.Stride >= (bm.Width+7)/8 && len(bm.Pix) >= bm.Stride*(bm.Height-1)+(bm.Width+7)/8
}
