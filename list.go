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

import "time"

// List is an ordered, append-only sequence of field values.  Lists are
// assembled through the Append* methods and then handed to a [File], which
// slices them into cards.  A list must not be modified after it has been
// passed to [File.AddGlobal] or [File.AddEntity].
type List []Object

// Append adds an already constructed value.
func (l *List) Append(obj Object) {
	*l = append(*l, obj)
}

// AppendDefault adds a defaulted field.
func (l *List) AppendDefault() {
	*l = append(*l, Default)
}

// AppendInteger adds an integer field.
func (l *List) AppendInteger(v int) error {
	x, err := NewInteger(int64(v))
	if err != nil {
		return err
	}
	*l = append(*l, x)
	return nil
}

// AppendFloat adds a single-precision real field.
func (l *List) AppendFloat(v float64) error {
	x, err := NewFloat(v)
	if err != nil {
		return err
	}
	*l = append(*l, x)
	return nil
}

// AppendDouble adds a double-precision real field.
func (l *List) AppendDouble(v float64) error {
	x, err := NewDouble(v)
	if err != nil {
		return err
	}
	*l = append(*l, x)
	return nil
}

// AppendString adds a Hollerith string field.  The empty string yields a
// defaulted field.
func (l *List) AppendString(s string) {
	if s == "" {
		*l = append(*l, Default)
		return
	}
	*l = append(*l, String(s))
}

// AppendLiteralString adds a verbatim string field.  The empty string
// yields a defaulted field.
func (l *List) AppendLiteralString(s string) {
	if s == "" {
		*l = append(*l, Default)
		return
	}
	*l = append(*l, LiteralString(s))
}

// AppendPointer adds a pointer field.
func (l *List) AppendPointer(v int) error {
	x, err := NewPointer(v)
	if err != nil {
		return err
	}
	*l = append(*l, x)
	return nil
}

// AppendBoolean adds a logical field.
func (l *List) AppendBoolean(v bool) {
	*l = append(*l, Boolean(v))
}

// AppendIntOrPointer adds a combined integer-or-pointer field holding the
// integer literal v.
func (l *List) AppendIntOrPointer(v int) error {
	if v < 0 {
		return &RangeError{Field: "IntOrPointer", Value: v}
	}
	x, err := NewIntOrPointer(int64(v))
	if err != nil {
		return err
	}
	*l = append(*l, x)
	return nil
}

// AppendDate adds a timestamp field.
func (l *List) AppendDate(t time.Time) {
	*l = append(*l, Date(t))
}

// appendDoubles adds one double-precision field per element of v.
func (l *List) appendDoubles(v []float64) error {
	for _, x := range v {
		if err := l.AppendDouble(x); err != nil {
			return err
		}
	}
	return nil
}
