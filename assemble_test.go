package gfxfont

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestAssembleCounters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxfont")
	defer teardown()
	//
	ranges := []Range{{0x20, 0x21}, {0x41, 0x45}}
	metrics := []Metrics{
		{Codepoint: 0x20, BitmapOffset: 0, Width: 0, Height: 0, XAdvance: 5, YOffset: 1},
		{Codepoint: 0x21, BitmapOffset: 0, Width: 3, Height: 3, XAdvance: 4, YOffset: -2},
	}
	bitmap := []byte{0xFF, 0x80}
	f := Assemble(ranges, metrics, bitmap, 17, true)
	assert.Equal(t, uint16(7), f.CharsCount, "chars count counts requested codepoints")
	assert.Equal(t, uint8(2), f.RangesCount)
	assert.Equal(t, uint16(2), f.BitmapSize)
	assert.Equal(t, uint8(17), f.YAdvance)
	assert.Len(t, f.Glyphs, 2)
	assert.Equal(t, Glyph{0, 3, 3, 4, 0, -2}, f.Glyphs[1])
	g, ok := f.Glyph(0x21)
	assert.True(t, ok)
	assert.Equal(t, uint8(3), g.Width)
	_, ok = f.Glyph(0x41)
	assert.False(t, ok)
	assert.Equal(t, []byte{0xFF, 0x80}, f.GlyphBitmap(1))
}

func TestAssembleLineHeightFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxfont")
	defer teardown()
	//
	metrics := []Metrics{{Codepoint: 'A', Width: 5, Height: 9}, {Codepoint: 'B', Width: 5, Height: 12}}
	f := Assemble([]Range{{'A', 'B'}}, metrics, make([]byte, 12), 0, false)
	assert.Equal(t, uint8(9), f.YAdvance, "expected height of first glyph as y-advance")
	f = Assemble([]Range{{'A', 'B'}}, nil, nil, 0, false)
	assert.Equal(t, uint8(0), f.YAdvance)
	assert.Equal(t, uint16(2), f.CharsCount)
	assert.Empty(t, f.Glyphs)
}

func TestAssembleTruncatesFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxfont")
	defer teardown()
	//
	metrics := []Metrics{{Codepoint: 'W', Width: 260, Height: 1, XAdvance: 300, XOffset: -129}}
	f := Assemble([]Range{{0, 0x1FFFF}}, metrics, nil, 0, false)
	assert.Equal(t, uint8(4), f.Glyphs[0].Width)
	assert.Equal(t, uint8(44), f.Glyphs[0].XAdvance)
	assert.Equal(t, int8(127), f.Glyphs[0].XOffset)
	assert.Equal(t, uint16(0), f.CharsCount, "0x20000 chars wrap to zero in 16 bits")
}

func TestRangeLen(t *testing.T) {
	assert.Equal(t, uint64(1), Range{7, 7}.Len())
	assert.Equal(t, uint64(1<<32), Range{0, 0xFFFFFFFF}.Len())
	assert.Equal(t, uint64(0), Range{8, 7}.Len())
	assert.True(t, Range{0x41, 0x45}.Contains(0x45))
	assert.False(t, Range{0x41, 0x45}.Contains(0x46))
	assert.Equal(t, "[0x41-0x45]", Range{0x41, 0x45}.String())
}
