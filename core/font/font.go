/*
Package font is for loading outline fonts and rendering their glyphs to
monochrome bitmaps.

We will stick to the following definitions:

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font in a certain size, rendered
at a certain resolution. The name is reminiscent of the wooden boxes of
typesetters in the era of metal type.
An example is "Helvetica regular 11pt at 141 dpi".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Glyphs are rendered by the pure-Go rasterizer of golang.org/x/image, which
produces anti-aliased coverage masks. Bitmap fonts for GFX displays know
just one level of gray, so masks are thresholded at 50% coverage.

No font collections nor variable fonts are supported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/gfxfont/core"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'gfxfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("gfxfont.fonts")
}

// ScalableFont is an outline font as loaded from a font file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads a TrueType or OpenType font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font file %s", fontfile)
	}
	f.Filepath = fontfile
	tracer().Debugf("loaded font %s from %s", f.Fontname, fontfile)
	return f, nil
}

// ParseOpenTypeFont parses the binary data of a TrueType or OpenType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// Family returns the font's family name, or the full name if the font does
// not name its family.
func (sf *ScalableFont) Family() string {
	if family, err := sf.SFNT.Name(nil, sfnt.NameIDFamily); err == nil && family != "" {
		return family
	}
	return sf.Fontname
}

// --- Hinting ---------------------------------------------------------------

// Hinting selects how outlines are fitted to the pixel grid.
type Hinting int

// Hinting modes. The x/image rasterizer does not execute TrueType bytecode;
// HintingBytecode snaps metrics and outlines to full pixels, HintingAuto to
// vertical pixels only.
const (
	HintingNone Hinting = iota
	HintingBytecode
	HintingAuto
)

func (h Hinting) String() string {
	switch h {
	case HintingBytecode:
		return "bytecode"
	case HintingAuto:
		return "auto"
	}
	return "no"
}

// ParseHinting parses one of "no", "bytecode" or "auto", ignoring case.
// The empty string selects HintingNone.
func ParseHinting(s string) (Hinting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "no", "none":
		return HintingNone, nil
	case "bytecode":
		return HintingBytecode, nil
	case "auto":
		return HintingAuto, nil
	}
	return HintingNone, core.Error(core.EINVALID, "unknown hinting mode %q, expected no|bytecode|auto", s)
}

func (h Hinting) xHinting() xfont.Hinting {
	switch h {
	case HintingBytecode:
		return xfont.HintingFull
	case HintingAuto:
		return xfont.HintingVertical
	}
	return xfont.HintingNone
}

// --- Type cases ------------------------------------------------------------

// PrepareCase scales a font to a size in points, rendered at a resolution
// of dpi dots per inch.
func (sf *ScalableFont) PrepareCase(fontsize, dpi float64, hinting Hinting) (*TypeCase, error) {
	if fontsize <= 0 || fontsize > 500 {
		return nil, core.Error(core.EINVALID, "font size must be 0 < size ≤ 500pt, is %g", fontsize)
	}
	if dpi <= 0 {
		return nil, core.Error(core.EINVALID, "invalid resolution of %g dpi", dpi)
	}
	options := &opentype.FaceOptions{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: hinting.xHinting(),
	}
	face, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot scale font %s to %gpt", sf.Fontname, fontsize)
	}
	tracer().Debugf("prepared type case %s at %gpt, %g dpi, %s hinting", sf.Fontname, fontsize, dpi, hinting)
	return &TypeCase{
		scalableFontParent: sf,
		face:               face,
		size:               fontsize,
		dpi:                dpi,
		hinting:            hinting,
	}, nil
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	gofont, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	gofont.Fontname = "Go Regular"
	gofont.Filepath = "goregular.ttf"
	return gofont
}
