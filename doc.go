/*
Package gfxfont converts outline fonts into compact bitmap fonts in the
format of the Adafruit GFX library, suitable for embedding into the flash
of microcontrollers.

A bitmap font consists of three tables and some aggregate counters:

▪︎ a bitmap blob, the concatenation of every glyph's monochrome pixels,
packed most-significant-bit first, with every glyph starting on a
fresh byte;

▪︎ a glyph table, one entry per rendered codepoint, holding the offset of
the glyph's pixels within the blob plus the glyph's metrics;

▪︎ a range table of disjoint, ascending codepoint ranges, which defines
the order of entries in the glyph table.

Package gfxfont holds the data model and the assembler for the font record.
Parsing of range specifications lives in package engine/ranges, bit-packing
in engine/bitpack and the construction of the glyph table in
engine/glyphtable. Package engine/convert strings the steps together.

Font coordinates follow the GFX convention: the glyph origin is on the text
baseline, +Y points downward.

	                    ...........#####.. -- yOffset
	                    ..........######..
	                    .........#######..
	                    ........#########.
	   * = Cursor pos.  .......##########.
	                    ......#####..####.
	       *.#..        .....#####...####.
	       .#.#.        ....##############
	       #...#        ...###############
	       #####        ..#####......#####
	       #...#        .#####.......#####
	====== #...# ====== #*###.........#### ======= Baseline
	                    || xOffset

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package gfxfont

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gfxfont'
func tracer() tracing.Trace {
	return tracing.Select("gfxfont")
}
