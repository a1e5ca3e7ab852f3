/*
Package convert runs the conversion of an outline font to a bitmap font.

The pipeline is

	range specification → canonical ranges → glyph table → font record

and runs as a single synchronous pass. All fatal errors (malformed or
overlapping ranges, invalid font parameters) are detected before the first
glyph is rendered. Glyphs missing from the font are reported as
diagnostics and do not stop a conversion.

Two conversions share nothing and may run in parallel.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package convert

import (
	"github.com/npillmayer/gfxfont"
	"github.com/npillmayer/gfxfont/core"
	"github.com/npillmayer/gfxfont/core/font"
	"github.com/npillmayer/gfxfont/engine/glyphtable"
	"github.com/npillmayer/gfxfont/engine/ranges"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gfxfont.convert'
func tracer() tracing.Trace {
	return tracing.Select("gfxfont.convert")
}

// Config holds the parameters of a conversion.
//
// The codepoints to convert are selected by exactly one of: ASCII mode,
// a single character (OneChar), a First/Last pair, or a range
// specification (Ranges). If none is given, ASCII mode is used.
type Config struct {
	Ranges   string       // range specification, e.g. "0x20-0x7E,0xA0-0xFF"
	ASCII    bool         // printable ASCII, 0x20–0x7E
	OneChar  string       // a single codepoint
	First    string       // first codepoint of a single range
	Last     string       // last codepoint of a single range
	Capacity int          // maximum number of ranges, 0 for ranges.DefaultCapacity
	Size     float64      // font size in points
	DPI      float64      // resolution in dots per inch
	Hinting  font.Hinting // hinting mode
}

// DefaultConfig returns a configuration rendering printable ASCII at 96 dpi,
// without hinting. Clients have to set a font size.
func DefaultConfig() Config {
	return Config{
		Capacity: ranges.DefaultCapacity,
		DPI:      96,
		Hinting:  font.HintingNone,
	}
}

// RangeList resolves the codepoint selection of a configuration into a
// canonical range list.
//
// Of a First/Last pair one side may be omitted; it then defaults to the
// other side. A range ending before it starts is an error, it is never
// swapped.
func (cfg Config) RangeList() ([]gfxfont.Range, error) {
	hasSpan := cfg.First != "" || cfg.Last != ""
	var raw []gfxfont.Range
	switch {
	case cfg.ASCII && cfg.OneChar != "":
		return nil, core.Error(core.EINVALID, "cannot specify both ASCII mode and single character mode")
	case cfg.Ranges != "" && (cfg.ASCII || cfg.OneChar != "" || hasSpan):
		return nil, core.Error(core.EINVALID, "a range specification excludes all other character selections")
	case cfg.ASCII && hasSpan:
		return nil, core.Error(core.EINVALID, "in ASCII mode, first and last characters must not be specified")
	case cfg.OneChar != "" && hasSpan:
		return nil, core.Error(core.EINVALID, "in single character mode, first and last characters must not be specified")
	case cfg.Ranges != "":
		var err error
		if raw, _, err = (ranges.Parser{Capacity: cfg.Capacity}).Parse(cfg.Ranges); err != nil {
			return nil, err
		}
	case cfg.OneChar != "":
		cp, err := ranges.ParseCodepoint(cfg.OneChar)
		if err != nil {
			return nil, err
		}
		raw = ranges.Single(cp)
	case hasSpan:
		first, last := cfg.First, cfg.Last
		if first == "" {
			first = last
		} else if last == "" {
			last = first
		}
		f, err := ranges.ParseCodepoint(first)
		if err != nil {
			return nil, err
		}
		l, err := ranges.ParseCodepoint(last)
		if err != nil {
			return nil, err
		}
		raw = ranges.Span(f, l)
	default:
		raw = ranges.ASCII()
	}
	return ranges.Canonicalize(raw)
}

// Result is the outcome of a conversion.
type Result struct {
	Font        *gfxfont.Font
	Diagnostics []error         // glyphs which have been skipped
	TypeCase    *font.TypeCase // the scaled font, if converted by ConvertFont
}

// Run converts the codepoints selected by cfg, rendering glyphs with
// rasterizer r. Font size, resolution and hinting of cfg are ignored, as
// they are properties of the rasterizer.
func Run(cfg Config, r glyphtable.Rasterizer) (*Result, error) {
	rlist, err := cfg.RangeList()
	if err != nil {
		return nil, err
	}
	return run(rlist, r), nil
}

func run(rlist []gfxfont.Range, r glyphtable.Rasterizer) *Result {
	tracer().Infof("converting %d codepoints in %d ranges", ranges.CharsCount(rlist), len(rlist))
	builder := glyphtable.NewBuilder(r)
	table := builder.Build(rlist)
	lh, ok := builder.LineHeight()
	f := gfxfont.Assemble(rlist, table.Metrics, table.Bitmap, lh, ok)
	if len(table.Diagnostics) > 0 {
		tracer().Infof("%d codepoints have been skipped", len(table.Diagnostics))
	}
	return &Result{Font: f, Diagnostics: table.Diagnostics}
}

// ConvertFont scales an outline font as configured by cfg and converts the
// selected codepoints.
func ConvertFont(cfg Config, sf *font.ScalableFont) (*Result, error) {
	if sf == nil {
		return nil, core.Error(core.EINVALID, "no font to convert")
	}
	rlist, err := cfg.RangeList()
	if err != nil {
		return nil, err
	}
	tc, err := sf.PrepareCase(cfg.Size, cfg.DPI, cfg.Hinting)
	if err != nil {
		return nil, err
	}
	result := run(rlist, tc)
	result.TypeCase = tc
	return result, nil
}
