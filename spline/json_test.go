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
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONRoundTrip(t *testing.T) {
	s1 := testSurface()

	buf := &bytes.Buffer{}
	if err := s1.Write(buf); err != nil {
		t.Fatal(err)
	}
	s2, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(s1, s2); d != "" {
		t.Errorf("surface changed (-write +read):\n%s", d)
	}
}

func TestJSONFieldNames(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := testSurface().Write(buf); err != nil {
		t.Fatal(err)
	}
	// the field names of the external format
	for _, key := range []string{
		`"pu"`, `"pv"`, `"U"`, `"V"`,
		`"Px"`, `"Py"`, `"Pz"`,
		`"real_world_Px"`, `"real_world_Py"`, `"real_world_Pz"`,
	} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("output lacks field %s", key)
		}
	}
}

func TestReadRejectsInvalid(t *testing.T) {
	// knots out of order
	in := `{"pu": 1, "pv": 1, "U": [0, 1, 0, 1], "V": [0, 0, 1, 1],
		"Px": [[0, 1], [0, 1]], "Py": [[0, 0], [1, 1]], "Pz": [[0, 0], [0, 0]],
		"real_world_Px": [[0, 1], [0, 1]], "real_world_Py": [[0, 0], [1, 1]],
		"real_world_Pz": [[0, 0], [0, 0]]}`
	_, err := Read(strings.NewReader(in))
	if err == nil {
		t.Error("invalid surface not rejected")
	}
}

func TestFileRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "surface.json")
	s1 := testSurface()
	if err := s1.WriteFile(name); err != nil {
		t.Fatal(err)
	}
	s2, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(s1, s2); d != "" {
		t.Errorf("surface changed (-write +read):\n%s", d)
	}
}
