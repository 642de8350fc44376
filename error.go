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
	"strconv"
)

// ConversionError indicates that a value was used in a field slot which
// requires a variant the value cannot be viewed as.
type ConversionError struct {
	From, To string
	Value    string
}

func (err *ConversionError) Error() string {
	return "cannot convert " + err.From + " [" + err.Value + "] to " + err.To
}

// RangeError indicates a value outside the legal domain of its field.
type RangeError struct {
	Field string
	Value any
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %v", err.Field, err.Value)
}

// DimensionError indicates an array whose length does not match the
// declared control point or knot counts.
type DimensionError struct {
	Field     string
	Got, Want int
}

func (err *DimensionError) Error() string {
	return "wrong length for " + err.Field + ": expected " +
		strconv.Itoa(err.Want) + ", got " + strconv.Itoa(err.Got)
}

// OrderError indicates a knot vector which is not non-decreasing, or a
// parameter range which is inverted or outside the active knot span.
type OrderError struct {
	Field  string
	Detail string
}

func (err *OrderError) Error() string {
	return "bad ordering in " + err.Field + ": " + err.Detail
}

// EnumError indicates a flag value not contained in its closed enumeration.
type EnumError struct {
	Field string
	Value int
}

func (err *EnumError) Error() string {
	return "invalid " + err.Field + ": " + strconv.Itoa(err.Value)
}

// FieldSizeError indicates a single rendered field which does not fit the
// content columns of one card.  Fields are atomic and are never split
// across cards.
type FieldSizeError struct {
	Value  string
	Budget int
}

func (err *FieldSizeError) Error() string {
	return "field does not fit in " + strconv.Itoa(err.Budget) +
		" columns: [" + err.Value + "]"
}

// EmptySectionError indicates an attempt to terminate a file one of whose
// sections contains no cards.
type EmptySectionError struct {
	Letter byte
}

func (err *EmptySectionError) Error() string {
	return "section " + string(rune(err.Letter)) + " is empty"
}
