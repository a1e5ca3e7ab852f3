package font

import (
	"fmt"
	"image"

	"github.com/npillmayer/gfxfont/engine/glyphtable"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TypeCase is a font scaled to a size and resolution. It renders glyphs to
// monochrome bitmaps and implements glyphtable.Rasterizer.
//
// A TypeCase is not safe for concurrent use.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
	dpi                float64
	hinting            Hinting
	buf                sfnt.Buffer
}

var _ glyphtable.Rasterizer = (*TypeCase)(nil)
var _ glyphtable.LineHeighter = (*TypeCase)(nil)

// ScalableFontParent returns the font tc has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize is the size of tc in points.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// DPI is the resolution tc renders at.
func (tc *TypeCase) DPI() float64 {
	return tc.dpi
}

// Hinting is the hinting mode of tc.
func (tc *TypeCase) Hinting() Hinting {
	return tc.hinting
}

// LineHeight is the recommended distance between two baselines in pixels,
// truncated. ok is false if the font does not specify it.
func (tc *TypeCase) LineHeight() (int, bool) {
	h := tc.face.Metrics().Height
	if h <= 0 {
		return 0, false
	}
	return h.Floor(), true
}

// Rasterize renders the glyph for codepoint cp. The glyph's bitmap is
// cropped to its set pixels; a glyph without any set pixels (e.g. a space)
// results in a 0×0 bitmap with zero bearings.
func (tc *TypeCase) Rasterize(cp rune) (*glyphtable.Bitmap, error) {
	gid, err := tc.scalableFontParent.SFNT.GlyphIndex(&tc.buf, cp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", glyphtable.ErrGlyphRasterize, err)
	}
	if gid == 0 {
		return nil, glyphtable.ErrGlyphMissing
	}
	dr, mask, maskp, advance, ok := tc.face.Glyph(fixed.Point26_6{}, cp)
	if !ok {
		return nil, glyphtable.ErrGlyphRasterize
	}
	bm := monochrome(dr, mask, maskp)
	bm.Advance = advance
	tracer().Debugf("glyph 0x%02X: %d×%d at (%d,%d), advance %v", cp, bm.Width, bm.Height,
		bm.Left, bm.Top, advance)
	return bm, nil
}

// GlyphName returns the name of the glyph for cp from the font's post
// table, or "" if the font does not name it.
func (tc *TypeCase) GlyphName(cp rune) string {
	sf := tc.scalableFontParent.SFNT
	gid, err := sf.GlyphIndex(&tc.buf, cp)
	if err != nil || gid == 0 {
		return ""
	}
	name, err := sf.GlyphName(&tc.buf, gid)
	if err != nil {
		return ""
	}
	return name
}

// monochrome thresholds a coverage mask and crops it to the bounding box
// of its set pixels. dr is relative to the pen position on the baseline,
// with +Y pointing downward.
func monochrome(dr image.Rectangle, mask image.Image, maskp image.Point) *glyphtable.Bitmap {
	on := func(x, y int) bool {
		_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
		return a >= 0x8000
	}
	w, h := dr.Dx(), dr.Dy()
	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if on(x, y) {
				minX, maxX = min(minX, x), max(maxX, x)
				minY, maxY = min(minY, y), max(maxY, y)
			}
		}
	}
	if maxX < 0 {
		return glyphtable.NewBitmap(0, 0)
	}
	bm := glyphtable.NewBitmap(maxX-minX+1, maxY-minY+1)
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			bm.Set(x, y, on(minX+x, minY+y))
		}
	}
	bm.Left = dr.Min.X + minX
	bm.Top = -(dr.Min.Y + minY)
	return bm
}
