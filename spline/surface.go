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

// Package spline represents fitted B-spline surfaces and converts them
// to IGES files.
//
// A surface carries two control nets over the same knot vectors: one in
// reference coordinates and one in real-world coordinates (meters).  The
// real-world net is the one written to IGES output.
package spline

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/iges"
)

// Surface is a fitted B-spline surface.
//
// The knot vector U has NumU()+DegU+1 entries, and V correspondingly.
// All six control nets have shape [NumV()][NumU()]; the v direction
// indexes the outer slice.
type Surface struct {
	// DegU and DegV are the polynomial degrees in the two parameter
	// directions.
	DegU int `json:"pu"`
	DegV int `json:"pv"`

	// U and V are the knot vectors, non-decreasing.
	U []float64 `json:"U"`
	V []float64 `json:"V"`

	// Px, Py, Pz are the control points in reference coordinates.
	Px [][]float64 `json:"Px"`
	Py [][]float64 `json:"Py"`
	Pz [][]float64 `json:"Pz"`

	// Rx, Ry, Rz are the control points in real-world coordinates
	// (meters).
	Rx [][]float64 `json:"real_world_Px"`
	Ry [][]float64 `json:"real_world_Py"`
	Rz [][]float64 `json:"real_world_Pz"`
}

// NumU returns the number of control points in the u direction.
func (s *Surface) NumU() int {
	return len(s.U) - s.DegU - 1
}

// NumV returns the number of control points in the v direction.
func (s *Surface) NumV() int {
	return len(s.V) - s.DegV - 1
}

// Check verifies the invariants of the surface: non-negative degrees,
// non-decreasing knot vectors, at least one control point in each
// direction, and control nets of the exact required shape.
func (s *Surface) Check() error {
	if s.DegU < 0 {
		return &iges.RangeError{Field: "polynomial degree pu", Value: s.DegU}
	}
	if s.DegV < 0 {
		return &iges.RangeError{Field: "polynomial degree pv", Value: s.DegV}
	}
	if !slices.IsSorted(s.U) {
		return &iges.OrderError{Field: "knot vector U", Detail: "not non-decreasing"}
	}
	if !slices.IsSorted(s.V) {
		return &iges.OrderError{Field: "knot vector V", Detail: "not non-decreasing"}
	}

	nu := s.NumU()
	nv := s.NumV()
	if nu < 1 {
		return &iges.DimensionError{Field: "control points per row", Got: nu, Want: 1}
	}
	if nv < 1 {
		return &iges.DimensionError{Field: "control point rows", Got: nv, Want: 1}
	}

	nets := []struct {
		name string
		p    [][]float64
	}{
		{"Px", s.Px}, {"Py", s.Py}, {"Pz", s.Pz},
		{"Rx", s.Rx}, {"Ry", s.Ry}, {"Rz", s.Rz},
	}
	for _, net := range nets {
		if len(net.p) != nv {
			return &iges.DimensionError{Field: net.name, Got: len(net.p), Want: nv}
		}
		for i, row := range net.p {
			if len(row) != nu {
				return &iges.DimensionError{
					Field: fmt.Sprintf("%s[%d]", net.name, i),
					Got:   len(row),
					Want:  nu,
				}
			}
		}
	}
	return nil
}

// Domain returns the active (u, v) parameter rectangle of the surface.
func (s *Surface) Domain() rect.Rect {
	return rect.Rect{
		LLx: s.U[s.DegU],
		LLy: s.V[s.DegV],
		URx: s.U[s.NumU()],
		URy: s.V[s.NumV()],
	}
}

// RefBounds returns the bounding box of the reference control net.
func (s *Surface) RefBounds() Box {
	b := emptyBox()
	s.mergeBounds(&b, s.Px, s.Py, s.Pz)
	return b
}

// RealBounds returns the bounding box of the real-world control net.
func (s *Surface) RealBounds() Box {
	b := emptyBox()
	s.mergeBounds(&b, s.Rx, s.Ry, s.Rz)
	return b
}

func (s *Surface) mergeBounds(b *Box, x, y, z [][]float64) {
	for i := range x {
		for j := range x[i] {
			b.extend(x[i][j], y[i][j], z[i][j])
		}
	}
}

// Box is an axis-aligned box in 3-space.
type Box struct {
	Min, Max [3]float64
}

// emptyBox returns the neutral element of Merge: extending it with a
// point yields the point's degenerate box.
func emptyBox() Box {
	return Box{
		Min: [3]float64{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		Max: [3]float64{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min[0] > b.Max[0]
}

func (b *Box) extend(x, y, z float64) {
	p := [3]float64{x, y, z}
	for i := range p {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
}

// Merge returns the smallest box containing both b and other.
func (b Box) Merge(other Box) Box {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], other.Min[i])
		b.Max[i] = math.Max(b.Max[i], other.Max[i])
	}
	return b
}

// MaxAbs returns the largest absolute coordinate value occurring on the
// box, or 0 for an empty box.
func (b Box) MaxAbs() float64 {
	if b.IsEmpty() {
		return 0
	}
	m := 0.0
	for i := 0; i < 3; i++ {
		m = math.Max(m, math.Abs(b.Min[i]))
		m = math.Max(m, math.Abs(b.Max[i]))
	}
	return m
}

// MaxSpan returns the length of the longest edge of the box, or 0 for an
// empty box.
func (b Box) MaxSpan() float64 {
	if b.IsEmpty() {
		return 0
	}
	m := 0.0
	for i := 0; i < 3; i++ {
		m = math.Max(m, b.Max[i]-b.Min[i])
	}
	return m
}
