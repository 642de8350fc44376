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
	"github.com/dhconnelly/rtreego"
)

// Set is an ordered collection of surfaces with a spatial index over
// their real-world bounding boxes.
type Set struct {
	surfaces []*Surface
	tree     *rtreego.Rtree
}

// NewSet creates an empty surface set.
func NewSet() *Set {
	return &Set{
		tree: rtreego.NewTree(3, 25, 50),
	}
}

// indexedSurface adapts a surface to the rtreego.Spatial interface.
type indexedSurface struct {
	surface *Surface
	bounds  Box
}

// Bounds implements the rtreego.Spatial interface.
func (e *indexedSurface) Bounds() rtreego.Rect {
	return boxRect(e.bounds)
}

// boxRect converts a box to an R-tree rectangle.  Degenerate boxes get a
// small epsilon padding, since the R-tree requires non-zero extents.
func boxRect(b Box) rtreego.Rect {
	const epsilon = 1e-9
	point := rtreego.Point{b.Min[0], b.Min[1], b.Min[2]}
	lengths := make([]float64, 3)
	for i := range lengths {
		lengths[i] = b.Max[i] - b.Min[i]
		if lengths[i] < epsilon {
			lengths[i] = epsilon
		}
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// Add validates the surface and adds it to the set.
func (t *Set) Add(s *Surface) error {
	if err := s.Check(); err != nil {
		return err
	}
	t.surfaces = append(t.surfaces, s)
	t.tree.Insert(&indexedSurface{surface: s, bounds: s.RealBounds()})
	return nil
}

// Len returns the number of surfaces in the set.
func (t *Set) Len() int {
	return len(t.surfaces)
}

// Surfaces returns the surfaces in insertion order.  The returned slice
// is shared with the set and must not be modified.
func (t *Set) Surfaces() []*Surface {
	return t.surfaces
}

// Bounds returns the merged real-world bounding box of all surfaces.
func (t *Set) Bounds() Box {
	b := emptyBox()
	for _, s := range t.surfaces {
		b = b.Merge(s.RealBounds())
	}
	return b
}

// SearchIntersect returns the surfaces whose real-world bounding boxes
// intersect the given box.
func (t *Set) SearchIntersect(b Box) []*Surface {
	found := t.tree.SearchIntersect(boxRect(b))
	res := make([]*Surface, 0, len(found))
	for _, e := range found {
		res = append(res, e.(*indexedSurface).surface)
	}
	return res
}
