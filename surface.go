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

package iges

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// SurfaceParams describes the parameter data of one rational B-spline
// surface entity (type 128).
//
// The surface has K1+1 control points of degree M1 along the first axis
// and K2+1 control points of degree M2 along the second.  The knot vector
// Knots1 must have length K1+M1+2 and Knots2 length K2+M2+2; both must be
// non-decreasing.  The control point grids X, Y, Z (and Weights, if
// present) have shape [K1+1][K2+1].
type SurfaceParams struct {
	K1, K2 int // number of control points minus one, per axis
	M1, M2 int // polynomial degree, per axis

	Closed1, Closed2     bool
	Periodic1, Periodic2 bool

	Knots1, Knots2 []float64

	// Weights, if nil, defaults to all ones.  Otherwise every weight must
	// be strictly positive.
	Weights [][]float64

	X, Y, Z [][]float64

	// Active parameter ranges.  U0 and U1 must satisfy
	// Knots1[M1] <= U0 < U1 <= Knots1[K1+1], and likewise V0, V1 over
	// Knots2.
	U0, U1 float64
	V0, V1 float64
}

// checkGrid verifies that g has shape [K1+1][K2+1].
func (p *SurfaceParams) checkGrid(name string, g [][]float64) error {
	if len(g) != p.K1+1 {
		return &DimensionError{Field: name, Got: len(g), Want: p.K1 + 1}
	}
	for i, row := range g {
		if len(row) != p.K2+1 {
			return &DimensionError{
				Field: fmt.Sprintf("%s[%d]", name, i),
				Got:   len(row),
				Want:  p.K2 + 1,
			}
		}
	}
	return nil
}

// check validates all array shapes, knot ordering, weight signs and
// parameter ranges.  Nothing is appended before check succeeds.
func (p *SurfaceParams) check() error {
	if len(p.Knots1) != p.K1+p.M1+2 {
		return &DimensionError{Field: "knot vector 1", Got: len(p.Knots1), Want: p.K1 + p.M1 + 2}
	}
	if len(p.Knots2) != p.K2+p.M2+2 {
		return &DimensionError{Field: "knot vector 2", Got: len(p.Knots2), Want: p.K2 + p.M2 + 2}
	}
	if !slices.IsSorted(p.Knots1) {
		return &OrderError{Field: "knot vector 1", Detail: "not non-decreasing"}
	}
	if !slices.IsSorted(p.Knots2) {
		return &OrderError{Field: "knot vector 2", Detail: "not non-decreasing"}
	}

	if p.Weights != nil {
		if err := p.checkGrid("weights", p.Weights); err != nil {
			return err
		}
		for i, row := range p.Weights {
			for j, w := range row {
				if !(w > 0) {
					return &RangeError{
						Field: fmt.Sprintf("weights[%d][%d]", i, j),
						Value: w,
					}
				}
			}
		}
	}
	if err := p.checkGrid("control points x", p.X); err != nil {
		return err
	}
	if err := p.checkGrid("control points y", p.Y); err != nil {
		return err
	}
	if err := p.checkGrid("control points z", p.Z); err != nil {
		return err
	}

	if !(p.Knots1[p.M1] <= p.U0 && p.U0 < p.U1 && p.U1 <= p.Knots1[p.K1+1]) {
		return &OrderError{
			Field: "parameter range 1",
			Detail: fmt.Sprintf("(%g, %g) not inside active span (%g, %g)",
				p.U0, p.U1, p.Knots1[p.M1], p.Knots1[p.K1+1]),
		}
	}
	if !(p.Knots2[p.M2] <= p.V0 && p.V0 < p.V1 && p.V1 <= p.Knots2[p.K2+1]) {
		return &OrderError{
			Field: "parameter range 2",
			Detail: fmt.Sprintf("(%g, %g) not inside active span (%g, %g)",
				p.V0, p.V1, p.Knots2[p.M2], p.Knots2[p.K2+1]),
		}
	}
	return nil
}

// isPolynomial reports whether every weight equals the first weight.
// This equality scan is how the format's "polynomial" flag is derived
// here; it is a known approximation, not a rigorous rationality test.
func (p *SurfaceParams) isPolynomial() bool {
	if p.Weights == nil {
		return true
	}
	first := p.Weights[0][0]
	for _, row := range p.Weights {
		for _, w := range row {
			if w != first {
				return false
			}
		}
	}
	return true
}

// AppendSurfaceParams appends the parameter data of a B-spline surface
// entity, beginning with the entity type code.  All validation happens
// before the first value is appended.
func (l *List) AppendSurfaceParams(p *SurfaceParams) error {
	if err := p.check(); err != nil {
		return err
	}

	if err := l.AppendInteger(entityBSplineSurface); err != nil {
		return err
	}

	for _, v := range []int{p.K1, p.K2, p.M1, p.M2} {
		if err := l.AppendInteger(v); err != nil {
			return err
		}
	}

	l.AppendBoolean(p.Closed1)
	l.AppendBoolean(p.Closed2)
	l.AppendBoolean(p.isPolynomial())
	l.AppendBoolean(p.Periodic1)
	l.AppendBoolean(p.Periodic2)

	if err := l.appendDoubles(p.Knots1); err != nil {
		return err
	}
	if err := l.appendDoubles(p.Knots2); err != nil {
		return err
	}

	// weights, second axis outer, first axis inner
	for i2 := 0; i2 <= p.K2; i2++ {
		for i1 := 0; i1 <= p.K1; i1++ {
			w := 1.0
			if p.Weights != nil {
				w = p.Weights[i1][i2]
			}
			if err := l.AppendDouble(w); err != nil {
				return err
			}
		}
	}

	// control points, interleaved per grid cell in the same order
	for i2 := 0; i2 <= p.K2; i2++ {
		for i1 := 0; i1 <= p.K1; i1++ {
			if err := l.AppendDouble(p.X[i1][i2]); err != nil {
				return err
			}
			if err := l.AppendDouble(p.Y[i1][i2]); err != nil {
				return err
			}
			if err := l.AppendDouble(p.Z[i1][i2]); err != nil {
				return err
			}
		}
	}

	// parameter ranges
	for _, v := range []float64{p.U0, p.U1, p.V0, p.V1} {
		if err := l.AppendDouble(v); err != nil {
			return err
		}
	}
	return nil
}
