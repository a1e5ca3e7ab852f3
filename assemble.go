package gfxfont

// Assemble combines a canonical range list, the glyph metrics and the
// bitmap blob into a font record.
//
// If haveLineHeight is set, lineHeight is used verbatim as the font's
// y-advance. Otherwise the height of the first glyph is used, assuming a
// fixed-height font.
//
// Metric values are truncated to the widths of the record's fields without
// further checks; respecting these limits is the caller's responsibility.
// Assemble cannot fail.
func Assemble(ranges []Range, metrics []Metrics, bitmap []byte, lineHeight int, haveLineHeight bool) *Font {
	f := &Font{
		Bitmap:     bitmap,
		Ranges:     ranges,
		Glyphs:     make([]Glyph, len(metrics)),
		Codepoints: make([]rune, len(metrics)),
	}
	var chars uint64
	for _, r := range ranges {
		chars += r.Len()
	}
	for i, m := range metrics {
		f.Glyphs[i] = Glyph{
			BitmapOffset: uint32(m.BitmapOffset),
			Width:        uint8(m.Width),
			Height:       uint8(m.Height),
			XAdvance:     uint8(m.XAdvance),
			XOffset:      int8(m.XOffset),
			YOffset:      int8(m.YOffset),
		}
		f.Codepoints[i] = m.Codepoint
	}
	f.RangesCount = uint8(len(ranges))
	f.CharsCount = uint16(chars)
	f.BitmapSize = uint16(len(bitmap))
	switch {
	case haveLineHeight:
		f.YAdvance = uint8(lineHeight)
	case len(metrics) > 0:
		f.YAdvance = uint8(metrics[0].Height)
	}
	if len(bitmap) > 0xFFFF || chars > 0xFFFF || len(ranges) > 0xFF {
		tracer().Infof("font exceeds 16-bit addressing: %d bitmap bytes, %d chars, %d ranges",
			len(bitmap), chars, len(ranges))
	}
	tracer().Debugf("assembled font: %d ranges, %d chars, %d glyphs, %d bitmap bytes",
		len(ranges), chars, len(metrics), len(bitmap))
	return f
}
