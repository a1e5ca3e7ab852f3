/*
Package binfmt stores bitmap fonts in a compact binary format, for targets
which load fonts at runtime instead of compiling them in.

All values are little-endian, as on AVR and ARM microcontrollers. A file
consists of

	magic        "GFXF"
	version      u8
	rangesCount  u8
	charsCount   u16
	yAdvance     u8
	bitmapSize   u16
	nRanges      u16    entries of the range table
	nGlyphs      u16    entries of the glyph table
	nBitmap      u32    bytes of bitmap data
	ranges       nRanges × { first u32, last u32 }
	glyphs       nGlyphs × { codepoint u32, bitmapOffset u32,
	                         width u8, height u8, xAdvance u8,
	                         xOffset i8, yOffset i8 }
	bitmap       nBitmap × u8

The counter fields of the font record are stored as they are, i.e.
possibly truncated; the table sizes are stored separately.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package binfmt

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/npillmayer/gfxfont"
	"github.com/npillmayer/gfxfont/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gfxfont.binfmt'
func tracer() tracing.Trace {
	return tracing.Select("gfxfont.binfmt")
}

// Version is the format version written by Write.
const Version = 1

var magic = [4]byte{'G', 'F', 'X', 'F'}

// ErrFormat is returned by Read for input which is not a font file of a
// supported version.
var ErrFormat = errors.New("not a GFX font file")

type header struct {
	Magic       [4]byte
	Version     uint8
	RangesCount uint8
	CharsCount  uint16
	YAdvance    uint8
	BitmapSize  uint16
	NRanges     uint16
	NGlyphs     uint16
	NBitmap     uint32
}

type glyphRecord struct {
	Codepoint    uint32
	BitmapOffset uint32
	Width        uint8
	Height       uint8
	XAdvance     uint8
	XOffset      int8
	YOffset      int8
}

// Write serializes font f to w.
func Write(w io.Writer, f *gfxfont.Font) error {
	if len(f.Ranges) > 0xFFFF || len(f.Glyphs) > 0xFFFF || uint64(len(f.Bitmap)) > 0xFFFFFFFF {
		return core.Error(core.ELIMIT, "font tables too large for binary format")
	}
	h := header{
		Magic:       magic,
		Version:     Version,
		RangesCount: f.RangesCount,
		CharsCount:  f.CharsCount,
		YAdvance:    f.YAdvance,
		BitmapSize:  f.BitmapSize,
		NRanges:     uint16(len(f.Ranges)),
		NGlyphs:     uint16(len(f.Glyphs)),
		NBitmap:     uint32(len(f.Bitmap)),
	}
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, h) // writes to a bytes.Buffer cannot fail
	binary.Write(&buf, binary.LittleEndian, f.Ranges)
	for i, g := range f.Glyphs {
		rec := glyphRecord{
			BitmapOffset: g.BitmapOffset,
			Width:        g.Width,
			Height:       g.Height,
			XAdvance:     g.XAdvance,
			XOffset:      g.XOffset,
			YOffset:      g.YOffset,
		}
		if i < len(f.Codepoints) {
			rec.Codepoint = uint32(f.Codepoints[i])
		}
		binary.Write(&buf, binary.LittleEndian, rec)
	}
	buf.Write(f.Bitmap)
	tracer().Debugf("writing %d bytes of binary font data", buf.Len())
	if _, err := buf.WriteTo(w); err != nil {
		return core.ErrorWithCode(err, core.ECONNECTION)
	}
	return nil
}

// Read deserializes a font written by Write.
func Read(r io.Reader) (*gfxfont.Font, error) {
	br := bufio.NewReader(r)
	var h header
	if err := binary.Read(br, binary.LittleEndian, &h); err != nil {
		return nil, formatError(err, "cannot read header")
	}
	if h.Magic != magic || h.Version != Version {
		return nil, core.WrapError(ErrFormat, core.EINVALID, "unknown magic %q or version %d",
			h.Magic[:], h.Version)
	}
	f := &gfxfont.Font{
		RangesCount: h.RangesCount,
		CharsCount:  h.CharsCount,
		YAdvance:    h.YAdvance,
		BitmapSize:  h.BitmapSize,
		Ranges:      make([]gfxfont.Range, h.NRanges),
		Glyphs:      make([]gfxfont.Glyph, h.NGlyphs),
		Codepoints:  make([]rune, h.NGlyphs),
	}
	if err := binary.Read(br, binary.LittleEndian, f.Ranges); err != nil {
		return nil, formatError(err, "cannot read range table")
	}
	recs := make([]glyphRecord, h.NGlyphs)
	if err := binary.Read(br, binary.LittleEndian, recs); err != nil {
		return nil, formatError(err, "cannot read glyph table")
	}
	for i, rec := range recs {
		f.Codepoints[i] = rune(rec.Codepoint)
		f.Glyphs[i] = gfxfont.Glyph{
			BitmapOffset: rec.BitmapOffset,
			Width:        rec.Width,
			Height:       rec.Height,
			XAdvance:     rec.XAdvance,
			XOffset:      rec.XOffset,
			YOffset:      rec.YOffset,
		}
	}
	// the size field is not trusted for allocation
	bitmap, err := io.ReadAll(io.LimitReader(br, int64(h.NBitmap)))
	if err != nil {
		return nil, formatError(err, "cannot read bitmap data")
	}
	if uint64(len(bitmap)) != uint64(h.NBitmap) {
		return nil, formatError(io.ErrUnexpectedEOF, "cannot read bitmap data")
	}
	f.Bitmap = bitmap
	tracer().Debugf("read font with %d ranges, %d glyphs", h.NRanges, h.NGlyphs)
	return f, nil
}

func formatError(err error, msg string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return core.WrapError(ErrFormat, core.EINVALID, "%s: file truncated", msg)
	}
	return core.WrapError(err, core.EINVALID, "%s", msg)
}
