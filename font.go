package gfxfont

import "fmt"

// Range is an inclusive range of codepoints, First ≤ Last.
type Range struct {
	First uint32
	Last  uint32
}

// Len is the number of codepoints in r. It is 64 bits wide, as the range
// [0, 0xFFFFFFFF] holds 2^32 codepoints.
func (r Range) Len() uint64 {
	if r.Last < r.First {
		return 0
	}
	return uint64(r.Last) - uint64(r.First) + 1
}

// Contains is a predicate: is cp part of r?
func (r Range) Contains(cp uint32) bool {
	return cp >= r.First && cp <= r.Last
}

func (r Range) String() string {
	if r.First == r.Last {
		return fmt.Sprintf("[0x%02X]", r.First)
	}
	return fmt.Sprintf("[0x%02X-0x%02X]", r.First, r.Last)
}

// Glyph is an entry of the glyph table, laid out as on the target device.
type Glyph struct {
	BitmapOffset uint32 // offset into Font.Bitmap
	Width        uint8  // bitmap dimensions in pixels
	Height       uint8
	XAdvance     uint8 // distance to advance cursor (x axis)
	XOffset      int8  // distance from cursor position to upper left corner
	YOffset      int8
}

// Metrics are the untruncated metrics of a rendered glyph, as produced by
// the glyph table builder. The assembler narrows them to a Glyph.
type Metrics struct {
	Codepoint    rune
	BitmapOffset int
	Width        int
	Height       int
	XAdvance     int
	XOffset      int
	YOffset      int
}

// PackedSize is the number of bytes the glyph's bitmap occupies in the blob.
func (m Metrics) PackedSize() int {
	return (m.Width*m.Height + 7) / 8
}

// Font is a complete bitmap font record. It is built once per conversion
// and never mutated afterwards.
//
// CharsCount is the number of codepoints requested by the range table. If
// the outline font lacks some glyphs, the glyph table will be shorter;
// clients have to treat len(Glyphs) as the authoritative number of entries.
type Font struct {
	Bitmap      []byte  // glyph bitmaps, concatenated
	Glyphs      []Glyph // glyph table
	Ranges      []Range // codepoint ranges, disjoint and ascending
	Codepoints  []rune  // codepoint of each glyph table entry, for annotations only
	RangesCount uint8   // count of the codepoint ranges
	CharsCount  uint16  // characters count
	YAdvance    uint8   // newline distance (y axis)
	BitmapSize  uint16  // size of glyph bitmaps
}

// ApproxSize estimates the number of bytes the font will occupy on the
// target device: the bitmaps, 7 bytes per glyph entry, 8 bytes per range
// and the font struct itself. Actual size may vary with the target's
// struct layout and pointer size.
func (f *Font) ApproxSize() int {
	return len(f.Bitmap) + len(f.Glyphs)*7 + len(f.Ranges)*8 + 12
}

// Glyph returns the glyph table entry for codepoint cp, if present.
func (f *Font) Glyph(cp rune) (Glyph, bool) {
	for i, c := range f.Codepoints {
		if c == cp && i < len(f.Glyphs) {
			return f.Glyphs[i], true
		}
	}
	return Glyph{}, false
}

// GlyphBitmap returns the packed bytes of glyph table entry i.
func (f *Font) GlyphBitmap(i int) []byte {
	if i < 0 || i >= len(f.Glyphs) {
		return nil
	}
	g := f.Glyphs[i]
	start := int(g.BitmapOffset)
	end := start + (int(g.Width)*int(g.Height)+7)/8
	if start > len(f.Bitmap) || end > len(f.Bitmap) {
		return nil
	}
	return f.Bitmap[start:end]
}
