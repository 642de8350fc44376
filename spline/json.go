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
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Read reads a surface in JSON form and validates it.
func Read(r io.Reader) (*Surface, error) {
	dec := json.NewDecoder(r)
	s := &Surface{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("spline: decoding surface: %w", err)
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFile reads a surface from the named JSON file.
func ReadFile(name string) (*Surface, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	s, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Write writes the surface in JSON form.
func (s *Surface) Write(w io.Writer) error {
	if err := s.Check(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	return enc.Encode(s)
}

// WriteFile writes the surface to the named file in JSON form.
func (s *Surface) WriteFile(name string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := s.Write(fd); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
