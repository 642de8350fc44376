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

package format

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestFloat(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0.0"},
		{1.5, "1.5"},
		{-1.5, "-1.5"},
		{100, "100.0"},
		{0.25, "0.25"},
		{1.0 / 3.0, "0.333333"},

		// values where the primary form has neither decimal point nor
		// exponent, forcing the fallback path
		{123456, "1.23456E+05"},
		{-123456, "-1.23456E+05"},
		{999999, "9.99999E+05"},

		// values the primary form renders in scientific notation
		{1234567, "1.23457E+06"},
		{1e7, "1.0E+07"},
		{1.25e-7, "1.25E-07"},

		// boundary magnitudes
		{1e38, "1.0E+38"},
		{-1e38, "-1.0E+38"},
		{1e-38, "1.0E-38"},
		{2.5e-38, "2.5E-38"},
	}
	for _, test := range cases {
		out := Float(test.in)
		if out != test.out {
			t.Errorf("Float(%g): expected %q, got %q", test.in, test.out, out)
		}
	}
}

func TestDouble(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0.0D+00"},
		{1.5, "1.5D+00"},
		{-1.5, "-1.5D+00"},
		{100, "1.0D+02"},
		{0.25, "2.5D-01"},
		{1e38, "1.0D+38"},
		{1e-38, "1.0D-38"},
		{1.0 / 3.0, "3.33333333333333D-01"},
	}
	for _, test := range cases {
		out := Double(test.in)
		if out != test.out {
			t.Errorf("Double(%g): expected %q, got %q", test.in, test.out, out)
		}
	}
}

func TestFloatHasPointOrExponent(t *testing.T) {
	// IGES requires every real to contain a decimal point or an exponent.
	cases := []float64{
		0, 1, -1, 10, 123456, 999999, 1000000, 1e-5, 1e5, 7e37, 3e-38,
	}
	for _, x := range cases {
		out := Float(x)
		if !strings.ContainsAny(out, ".E") {
			t.Errorf("Float(%g) = %q has neither point nor exponent", x, out)
		}
	}
}

func FuzzFloat(f *testing.F) {
	f.Add(0.0)
	f.Add(1.5)
	f.Add(123456.0)
	f.Add(-1e38)
	f.Add(2.5e-38)
	f.Fuzz(func(t *testing.T, x float64) {
		if math.IsNaN(x) || math.Abs(x) > 1e38 {
			t.Skip()
		}
		if x != 0 && math.Abs(x) < 1e-38 {
			// below the IGES single-precision range
			t.Skip()
		}
		out := Float(x)
		if !strings.ContainsAny(out, ".E") {
			t.Errorf("Float(%g) = %q has neither point nor exponent", x, out)
		}
		y, err := strconv.ParseFloat(out, 64)
		if err != nil {
			t.Fatalf("Float(%g) = %q does not parse: %s", x, out, err)
		}
		if x != 0 && math.Abs(y-x) > 1e-5*math.Abs(x) {
			t.Errorf("Float(%g) = %q loses too much precision", x, out)
		}
	})
}

func FuzzDouble(f *testing.F) {
	f.Add(0.0)
	f.Add(1.5)
	f.Add(-2.75e11)
	f.Fuzz(func(t *testing.T, x float64) {
		if math.IsNaN(x) || math.Abs(x) > 1e38 {
			t.Skip()
		}
		if x != 0 && math.Abs(x) < 1e-38 {
			t.Skip()
		}
		out := Double(x)
		if !strings.Contains(out, "D") {
			t.Fatalf("Double(%g) = %q has no exponent marker", x, out)
		}
		y, err := strconv.ParseFloat(strings.Replace(out, "D", "E", 1), 64)
		if err != nil {
			t.Fatalf("Double(%g) = %q does not parse: %s", x, out, err)
		}
		if x != 0 && math.Abs(y-x) > 1e-13*math.Abs(x) {
			t.Errorf("Double(%g) = %q loses too much precision", x, out)
		}
	})
}
