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

	"github.com/npillmayer/fontrun/core"
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
	PX   Dimen = 65536   // "pixels"
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// Medium is the CSS initial font size.
const Medium Dimen = 16 * PX

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// Pixels returns a dimension in CSS pixels.
func (d Dimen) Pixels() float64 {
	return float64(d) / float64(PX)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]*\.?[0-9]+)(%|[a-zA-Z]{2,3})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true
// and the dimension holds the percentage as a plain number.
// Relative units `em` and `rem` are not resolved by ParseDimen, please use
// ParseFontSize.
//
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(d) < 2 {
		return 0, false, core.Error(core.EINVALID, "format error parsing dimension: %q", s)
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, core.WrapError(err, core.EINVALID, "format error parsing dimension: %q", s)
	}
	scale := SP
	ispcnt := false
	switch strings.ToLower(d[2]) {
	case "":
		if n != 0 {
			return 0, false, core.Error(core.EINVALID, "dimension without unit: %q", s)
		}
	case "pt":
		scale = PT
	case "mm":
		scale = MM
	case "bp", "px":
		scale = BP
	case "cm":
		scale = CM
	case "in":
		scale = IN
	case "sp":
		scale = SP
	case "%":
		scale, ispcnt = 1, true
	default:
		return 0, false, core.Error(core.EINVALID, "unknown unit in dimension: %q", s)
	}
	return Dimen(math.Round(n * float64(scale))), ispcnt, nil
}

// font-size keywords, relative to Medium (CSS Fonts Level 4, 2.5)
var absoluteSizes = map[string]float64{
	"xx-small":  3.0 / 5.0,
	"x-small":   3.0 / 4.0,
	"small":     8.0 / 9.0,
	"medium":    1.0,
	"large":     6.0 / 5.0,
	"x-large":   3.0 / 2.0,
	"xx-large":  2.0 / 1.0,
	"xxx-large": 3.0 / 1.0,
}

// ParseFontSize parses the value of a CSS font-size property. Relative
// values (`1.2em`, `80%`, `larger`) are resolved against parent.
// If parent is zero, Medium is used.
func ParseFontSize(s string, parent Dimen) (Dimen, error) {
	if parent == 0 {
		parent = Medium
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if f, ok := absoluteSizes[s]; ok {
		return Dimen(math.Round(f * float64(Medium))), nil
	}
	switch s {
	case "larger":
		return Dimen(math.Round(1.2 * float64(parent))), nil
	case "smaller":
		return Dimen(math.Round(float64(parent) / 1.2)), nil
	}
	for _, rel := range []string{"rem", "em"} {
		if strings.HasSuffix(s, rel) {
			n, err := strconv.ParseFloat(strings.TrimSuffix(s, rel), 64)
			if err != nil {
				return 0, core.WrapError(err, core.EINVALID, "cannot parse font size %q", s)
			}
			base := parent
			if rel == "rem" {
				base = Medium
			}
			return Dimen(math.Round(n * float64(base))), nil
		}
	}
	d, ispcnt, err := ParseDimen(s)
	if err != nil {
		return 0, err
	}
	if ispcnt {
		d = Dimen(math.Round(float64(d) / 100 * float64(parent)))
	}
	if d < 0 {
		return 0, core.Error(core.EINVALID, "font size must not be negative: %q", s)
	}
	return d, nil
}
