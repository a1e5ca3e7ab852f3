/*
Package glyphtable builds the glyph table and the bitmap blob of a font.

The builder visits codepoints range by range, in ascending order within
each range. This order defines the correspondence between the range table
and the glyph table of the resulting font. Codepoints the rasterizer cannot
deliver are skipped: they occupy neither a table entry nor bitmap bytes.

No overflow checks are performed on the running bitmap offset nor on
metric values; this is the responsibility of the caller.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphtable

import (
	"errors"

	"github.com/npillmayer/gfxfont"
	"github.com/npillmayer/gfxfont/core"
	"github.com/npillmayer/gfxfont/engine/bitpack"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gfxfont.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("gfxfont.glyphs")
}

// Table is the result of a build run.
type Table struct {
	Metrics     []gfxfont.Metrics // one entry per rendered codepoint
	Bitmap      []byte            // packed glyph bitmaps
	Size        int               // running byte total after the last glyph
	Diagnostics []error           // non-fatal errors for skipped codepoints
}

// Builder creates glyph tables. A Builder owns its bit packer and is not
// safe for concurrent use.
type Builder struct {
	raster Rasterizer
	packer *bitpack.Packer
	total  int
}

// NewBuilder creates a builder drawing glyphs from a rasterizer.
func NewBuilder(r Rasterizer) *Builder {
	return &Builder{
		raster: r,
		packer: bitpack.NewPacker(),
	}
}

// Build renders every codepoint of ranges. ranges are expected to be
// canonical. Every call to Build starts from scratch.
func (b *Builder) Build(ranges []gfxfont.Range) *Table {
	b.packer.Reset()
	b.total = 0
	table := &Table{}
	for _, r := range ranges {
		for cp := r.First; ; cp++ {
			if m, err := b.glyph(rune(cp)); err != nil {
				tracer().Infof("skipping codepoint 0x%02X: %v", cp, err)
				table.Diagnostics = append(table.Diagnostics, err)
			} else {
				table.Metrics = append(table.Metrics, m)
			}
			if cp == r.Last {
				break
			}
		}
	}
	table.Size = b.total
	table.Bitmap = append([]byte(nil), b.packer.Bytes()...)
	if err := b.packer.Err(); err != nil {
		table.Diagnostics = append(table.Diagnostics, err)
	}
	tracer().Debugf("built %d glyphs, %d bytes, %d skipped", len(table.Metrics), table.Size,
		len(table.Diagnostics))
	return table
}

func (b *Builder) glyph(cp rune) (gfxfont.Metrics, error) {
	bm, err := b.raster.Rasterize(cp)
	if err != nil {
		if errors.Is(err, ErrGlyphMissing) {
			return gfxfont.Metrics{}, core.WrapError(err, core.EMISSING, "no glyph for codepoint 0x%02X", cp)
		}
		return gfxfont.Metrics{}, core.WrapError(err, core.EINTERNAL, "cannot rasterize codepoint 0x%02X", cp)
	}
	if bm == nil || !bm.valid() {
		return gfxfont.Metrics{}, core.WrapError(ErrGlyphRasterize, core.EINTERNAL,
			"rasterizer delivered malformed bitmap for codepoint 0x%02X", cp)
	}
	m := gfxfont.Metrics{
		Codepoint:    cp,
		BitmapOffset: b.total,
		Width:        bm.Width,
		Height:       bm.Height,
		XAdvance:     int(bm.Advance / 64), // truncates toward zero
		XOffset:      bm.Left,
		YOffset:      1 - bm.Top,
	}
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			b.packer.Add(bm.PixelAt(x, y))
		}
	}
	b.packer.Pad()
	b.total += m.PackedSize()
	return m, nil
}

// LineHeight asks the builder's rasterizer for a face-wide line height.
func (b *Builder) LineHeight() (int, bool) {
	if lh, ok := b.raster.(LineHeighter); ok {
		return lh.LineHeight()
	}
	return 0, false
}
