// seehuhn.de/go/iges - a library for writing IGES files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package format renders real numbers in the two notations IGES uses.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Float renders x as an IGES single-precision real, using 6 significant
// digits.  Fixed notation is used while the decimal exponent of the
// rounded value lies in [-4, 6); otherwise, or when fixed notation would
// contain no decimal point, scientific notation with 5 fractional digits
// is used (IGES requires a decimal point or an exponent to be present).
func Float(x float64) string {
	sci := fmt.Sprintf("%.5E", x)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'E')+1:])
	if err != nil {
		panic("unreachable")
	}
	s := sci
	if exp >= -4 && exp < 6 {
		s = strconv.FormatFloat(x, 'f', 5-exp, 64)
		if !strings.Contains(s, ".") {
			s = sci
		}
	}
	return stripZeros(s)
}

// Double renders x as an IGES double-precision real: scientific notation
// with 14 fractional digits and the exponent marker "D" in place of "E".
func Double(x float64) string {
	s := stripZeros(fmt.Sprintf("%.14E", x))
	return strings.Replace(s, "E", "D", 1)
}

// stripZeros removes trailing zeros after the decimal point, keeping at
// least one digit, both at the end of the mantissa and, if an exponent is
// present, directly before the exponent marker.
func stripZeros(s string) string {
	mant, exp, hasExp := strings.Cut(s, "E")
	if strings.Contains(mant, ".") {
		mant = strings.TrimRight(mant, "0")
		if strings.HasSuffix(mant, ".") {
			mant += "0"
		}
	}
	if hasExp {
		return mant + "E" + exp
	}
	return mant
}
