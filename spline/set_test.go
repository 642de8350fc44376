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

package spline

import (
	"testing"
)

// shiftedSurface returns a copy of the test patch translated by dx in
// real-world x.
func shiftedSurface(dx float64) *Surface {
	s := testSurface()
	rx := make([][]float64, len(s.Rx))
	for i, row := range s.Rx {
		rx[i] = make([]float64, len(row))
		for j, x := range row {
			rx[i][j] = x + dx
		}
	}
	s.Rx = rx
	return s
}

func TestSet(t *testing.T) {
	set := NewSet()
	if set.Len() != 0 {
		t.Errorf("new set has %d surfaces", set.Len())
	}

	s1 := shiftedSurface(0)
	s2 := shiftedSurface(1000)
	for _, s := range []*Surface{s1, s2} {
		if err := set.Add(s); err != nil {
			t.Fatal(err)
		}
	}
	if set.Len() != 2 {
		t.Fatalf("set has %d surfaces, want 2", set.Len())
	}
	if got := set.Surfaces(); got[0] != s1 || got[1] != s2 {
		t.Error("insertion order not preserved")
	}

	b := set.Bounds()
	if b.Min[0] != 0 || b.Max[0] != 1100 {
		t.Errorf("merged bounds = %v", b)
	}

	// a query box around the first surface only
	query := Box{Min: [3]float64{-10, -10, -10}, Max: [3]float64{200, 60, 10}}
	found := set.SearchIntersect(query)
	if len(found) != 1 || found[0] != s1 {
		t.Errorf("SearchIntersect returned %d surfaces", len(found))
	}

	// a query box covering everything
	found = set.SearchIntersect(set.Bounds())
	if len(found) != 2 {
		t.Errorf("full query returned %d surfaces, want 2", len(found))
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	set := NewSet()
	s := testSurface()
	s.DegV = -1
	if err := set.Add(s); err == nil {
		t.Error("invalid surface not rejected")
	}
	if set.Len() != 0 {
		t.Errorf("set has %d surfaces after failed Add", set.Len())
	}
}

func TestDegenerateBounds(t *testing.T) {
	// a surface whose real-world net is a single point still gets a
	// valid index entry
	s := testSurface()
	for _, net := range [][][]float64{s.Rx, s.Ry, s.Rz} {
		for i := range net {
			for j := range net[i] {
				net[i][j] = 5
			}
		}
	}
	set := NewSet()
	if err := set.Add(s); err != nil {
		t.Fatal(err)
	}
	query := Box{Min: [3]float64{4, 4, 4}, Max: [3]float64{6, 6, 6}}
	if found := set.SearchIntersect(query); len(found) != 1 {
		t.Errorf("point surface not found, got %d results", len(found))
	}
}
