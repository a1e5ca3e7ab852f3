// Package dimen implements dimensions and units for font sizes.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/gfxfont/core"
)

// Online dimension conversion for print:
// http://www.unitconversion.org/unit_converter/typography-ex.html

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)\s*([a-zA-Z]{2})?$`)

// ParseDimen parses a string to return a dimension, e.g. "12pt" or "4.5mm".
// A number without a unit is taken as big points. Pixels ("px") are not a
// dimension, as they depend on the target's resolution; use ParseFontSize
// for them.
func ParseDimen(s string) (Dimen, error) {
	n, unit, err := split(s)
	if err != nil {
		return 0, err
	}
	if unit == "px" {
		return 0, core.Error(core.EINVALID, "pixel size %q needs a resolution", s)
	}
	return scale(n, unit, s)
}

// ParseFontSize parses a font size and returns it in big points, as used by
// font rasterizers. Besides dimensions, sizes in pixels are accepted ("16px")
// and converted by resolution dpi.
func ParseFontSize(s string, dpi float64) (float64, error) {
	n, unit, err := split(s)
	if err != nil {
		return 0, err
	}
	if unit == "px" {
		if dpi <= 0 {
			return 0, core.Error(core.EINVALID, "invalid resolution of %g dpi", dpi)
		}
		return n * 72 / dpi, nil
	}
	d, err := scale(n, unit, s)
	if err != nil {
		return 0, err
	}
	return d.Points(), nil
}

func split(s string) (float64, string, error) {
	m := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, "", core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
	}
	return n, strings.ToLower(m[2]), nil
}

func scale(n float64, unit string, s string) (Dimen, error) {
	var unitsize Dimen
	switch unit {
	case "pt":
		unitsize = PT
	case "bp", "":
		unitsize = BP
	case "mm":
		unitsize = MM
	case "cm":
		unitsize = CM
	case "in":
		unitsize = IN
	case "sp":
		unitsize = SP
	default:
		return 0, core.Error(core.EINVALID, "unknown unit in dimension %q", s)
	}
	d := math.Round(n * float64(unitsize))
	if d > math.MaxInt32 || d < math.MinInt32 {
		return 0, core.Error(core.ELIMIT, "dimension %q out of range", s)
	}
	return Dimen(d), nil
}
