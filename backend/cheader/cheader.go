/*
Package cheader writes bitmap fonts as C source for the Adafruit GFX
library, in the flavour which supports multiple codepoint ranges:

	typedef struct {
		const uint8_t  *bitmap;
		const GFXglyph *glyph;
		const GFXglyphRange* ranges;
		uint8_t   rangesCount;
		uint16_t  charsCount;
		uint8_t   yAdvance;
		uint16_t  bitmapSize;
	} GFXfont;

The output is meant to be included by firmware sources. Its layout follows
the traditional fontconvert utility closely, so generated headers may be
diffed against existing ones.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package cheader

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/gfxfont"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/runenames"
)

// tracer writes to trace with key 'gfxfont.cheader'
func tracer() tracing.Trace {
	return tracing.Select("gfxfont.cheader")
}

// bytesPerLine is the number of bitmap bytes per line of output.
const bytesPerLine = 12

// Options control the generated source. All fields are optional; an empty
// Name is derived from FontFile, Size and the font's ranges.
type Options struct {
	Name     string  // C identifier of the font struct
	Progmem  bool    // place data in program memory (AVR)
	FontFile string  // path of the outline font
	Family   string  // family name of the outline font
	Size     float64 // size in points
	DPI      int     // resolution in dots per inch
	Hinting  string  // hinting mode, informational
}

// FontName derives a C identifier for a font from the name of its font
// file, its size and its codepoint ranges, e.g.
//
//	FreeSans9pt7b_20_7E   FreeSans9pt_ascii   FreeSans9pt8b_char20AC
//
// Characters which may not appear in a C identifier are replaced by '_'.
func FontName(fontfile string, size float64, ranges []gfxfont.Range) string {
	base := filepath.Base(fontfile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "font"
	}
	bits := 7
	for _, r := range ranges {
		if r.Last > 127 {
			bits = 8
		}
	}
	pt := strconv.FormatFloat(size, 'f', -1, 64)
	var suffix string
	switch {
	case len(ranges) == 1 && ranges[0].First == ranges[0].Last:
		suffix = fmt.Sprintf("%spt%db_char%02X", pt, bits, ranges[0].First)
	case len(ranges) == 1 && ranges[0].First == 0x20 && ranges[0].Last == 0x7E:
		suffix = fmt.Sprintf("%spt_ascii", pt)
	case len(ranges) == 1:
		suffix = fmt.Sprintf("%spt%db_%02X_%02X", pt, bits, ranges[0].First, ranges[0].Last)
	default:
		suffix = fmt.Sprintf("%spt%db_%dranges", pt, bits, len(ranges))
	}
	return identifier(base + suffix)
}

func identifier(s string) string {
	id := strings.Map(func(r rune) rune {
		if r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			return r
		}
		return '_'
	}, s)
	if id != "" && unicode.IsDigit(rune(id[0])) {
		id = "_" + id
	}
	return id
}

// Write writes font f as C source to w. The first write error is returned.
func Write(w io.Writer, f *gfxfont.Font, opts Options) error {
	name := opts.Name
	if name == "" {
		name = FontName(opts.FontFile, opts.Size, f.Ranges)
	} else {
		name = identifier(name)
	}
	tracer().Debugf("writing C header for font %s", name)
	progmem := ""
	if opts.Progmem {
		progmem = " PROGMEM"
	}
	bw := bufio.NewWriter(w)
	writeComment(bw, f, opts)
	//
	fmt.Fprintf(bw, "const uint8_t %s_Bitmaps[]%s = {\n  ", name, progmem)
	if len(f.Bitmap) == 0 {
		bw.WriteString("0x00") // C does not allow empty arrays
	}
	for i, b := range f.Bitmap {
		if i > 0 {
			if i%bytesPerLine == 0 {
				bw.WriteString(",\n  ")
			} else {
				bw.WriteString(", ")
			}
		}
		fmt.Fprintf(bw, "0x%02X", b)
	}
	bw.WriteString(" };\n\n")
	//
	fmt.Fprintf(bw, "const GFXglyph %s_Glyphs[]%s = {\n", name, progmem)
	if len(f.Glyphs) == 0 {
		bw.WriteString("  {     0,   0,   0,   0,    0,    0 } }; // no glyphs\n")
	}
	for i, g := range f.Glyphs {
		fmt.Fprintf(bw, "  { %5d, %3d, %3d, %3d, %4d, %4d }", g.BitmapOffset,
			g.Width, g.Height, g.XAdvance, g.XOffset, g.YOffset)
		if i < len(f.Glyphs)-1 {
			bw.WriteString(",   //")
		} else {
			bw.WriteString(" }; //")
		}
		if i < len(f.Codepoints) {
			bw.WriteString(" " + annotation(f.Codepoints[i]))
		}
		bw.WriteString("\n")
	}
	bw.WriteString("\n")
	//
	fmt.Fprintf(bw, "const GFXglyphRange %s_Ranges[]%s = {\n", name, progmem)
	for i, r := range f.Ranges {
		fmt.Fprintf(bw, "  { 0x%02X, 0x%02X }", r.First, r.Last)
		if i < len(f.Ranges)-1 {
			bw.WriteString(",\n")
		}
	}
	bw.WriteString(" };\n\n")
	//
	fmt.Fprintf(bw, "const GFXfont %s%s = {\n", name, progmem)
	fmt.Fprintf(bw, "  (uint8_t  *)%s_Bitmaps,\n", name)
	fmt.Fprintf(bw, "  (GFXglyph *)%s_Glyphs,\n", name)
	fmt.Fprintf(bw, "  (GFXglyphRange *)%s_Ranges,\n", name)
	fmt.Fprintf(bw, "  %d, %d, %d, %d };\n\n", f.RangesCount, f.CharsCount, f.YAdvance, f.BitmapSize)
	fmt.Fprintf(bw, "// Approx. %d bytes\n", f.ApproxSize())
	return bw.Flush()
}

func writeComment(bw *bufio.Writer, f *gfxfont.Font, opts Options) {
	hinting := opts.Hinting
	if hinting == "" {
		hinting = "no"
	}
	bw.WriteString("/*******************************************************************\n")
	bw.WriteString(" *  Generated by fontconvert utility:\n")
	fmt.Fprintf(bw, " * Font Name: '%s', filepath: '%s'\n", opts.Family, opts.FontFile)
	fmt.Fprintf(bw, " * Size: %s\n", strconv.FormatFloat(opts.Size, 'f', -1, 64))
	fmt.Fprintf(bw, " * DPI: %d\n", opts.DPI)
	fmt.Fprintf(bw, " * Hinting: %s\n", hinting)
	for _, r := range f.Ranges {
		fmt.Fprintf(bw, " * Range: %s .. %s\n", character(r.First), character(r.Last))
	}
	fmt.Fprintf(bw, " * Characters: %d, glyphs: %d\n", f.CharsCount, len(f.Glyphs))
	bw.WriteString(" *******************************************************************/\n\n")
}

func character(cp uint32) string {
	if isPrint(rune(cp)) {
		return fmt.Sprintf("'%c' (0x%02X)", rune(cp), cp)
	}
	return fmt.Sprintf("(0x%02X)", cp)
}

// annotation comments a glyph table entry: printable ASCII characters are
// shown verbatim, all others by their Unicode name.
func annotation(cp rune) string {
	if isPrint(cp) {
		return fmt.Sprintf("0x%02X '%c'", cp, cp)
	}
	if cp < 0x80 {
		return fmt.Sprintf("0x%02X", cp)
	}
	if name := runenames.Name(cp); name != "" {
		return fmt.Sprintf("U+%04X %s", cp, name)
	}
	return fmt.Sprintf("U+%04X", cp)
}

func isPrint(cp rune) bool {
	return cp >= 0x20 && cp < 0x7F
}
