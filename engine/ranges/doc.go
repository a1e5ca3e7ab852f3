/*
Package ranges parses specifications of codepoint ranges and brings them
into canonical form.

A range specification is a list of tokens, separated by commas or
semicolons. A token is either a single codepoint or a pair of codepoints
joined by a dash:

	0x20-0x7E, 0xA0-0xFF; 8364

Codepoints may be written in decimal, as hexadecimal with a '0x' prefix, or
as hexadecimal with an 'h' suffix (`20h`).

Canonicalization sorts the ranges, rejects overlapping or nested ranges and
merges adjacent ones. The result is the unique, maximally merged list of
disjoint ranges in ascending order, which defines the order of the glyph
table of a font.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ranges

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gfxfont.ranges'
func tracer() tracing.Trace {
	return tracing.Select("gfxfont.ranges")
}
