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
	"time"

	"seehuhn.de/go/iges/internal/format"
)

// Object represents a single field value in an IGES file.  There are nine
// value types, which implement this interface: Integer, Float, Double,
// String, LiteralString, Pointer, IntOrPointer, Boolean, and Date; in
// addition the Default value stands in for any field left at its default.
type Object interface {
	// IGES returns the free-format text of the value.  Default and empty
	// string values render as the empty string.
	IGES() string
}

// Default is the value of any field left at its default.  It renders as
// the empty string and can be viewed as any of the other value types.
var Default Object = defaultValue{}

type defaultValue struct{}

// IGES implements the [Object] interface.
func (defaultValue) IGES() string { return "" }

// Integer represents an integer field.  The legal range is symmetric,
// [-2147483647, 2147483647].
type Integer int32

// NewInteger checks that v is a legal IGES integer.
func NewInteger(v int64) (Integer, error) {
	if v < intMin || v > intMax {
		return 0, &RangeError{Field: "Integer", Value: v}
	}
	return Integer(v), nil
}

// IGES implements the [Object] interface.
func (x Integer) IGES() string {
	return strconv.FormatInt(int64(x), 10)
}

// Float represents a single-precision real field.
type Float float64

// NewFloat checks that v is representable as an IGES single-precision
// real.  Magnitudes up to 1e-38 are snapped to exactly zero.
func NewFloat(v float64) (Float, error) {
	if v < -floatMax || v > floatMax || v != v {
		return 0, &RangeError{Field: "Float", Value: v}
	}
	if v >= -floatMin && v <= floatMin {
		v = 0
	}
	return Float(v), nil
}

// IGES implements the [Object] interface.
func (x Float) IGES() string {
	return format.Float(float64(x))
}

// Double represents a double-precision real field.  It differs from Float
// only in its rendering, which always uses scientific notation with the
// double-precision exponent marker "D".
type Double float64

// NewDouble checks that v is representable as an IGES double-precision
// real.  Magnitudes up to 1e-38 are snapped to exactly zero.
func NewDouble(v float64) (Double, error) {
	if v < -doubleMax || v > doubleMax || v != v {
		return 0, &RangeError{Field: "Double", Value: v}
	}
	if v >= -doubleMin && v <= doubleMin {
		v = 0
	}
	return Double(v), nil
}

// IGES implements the [Object] interface.
func (x Double) IGES() string {
	return format.Double(float64(x))
}

// String represents a string field, rendered in Hollerith form
// "<count>H<chars>".  The empty String is equivalent to Default.
type String string

// IGES implements the [Object] interface.
func (x String) IGES() string {
	if x == "" {
		return ""
	}
	return strconv.Itoa(len(x)) + "H" + string(x)
}

// LiteralString represents a string field rendered verbatim, without the
// Hollerith length prefix.  The empty LiteralString is equivalent to
// Default.
type LiteralString string

// IGES implements the [Object] interface.
func (x LiteralString) IGES() string {
	return string(x)
}

// Pointer represents a sequence number in one of the file's sections.
// Pointers are non-negative; the value 0 acts as a null pointer.
type Pointer int32

// NewPointer checks that v is a legal pointer value.
func NewPointer(v int) (Pointer, error) {
	if v < 0 || v > pointerMax {
		return 0, &RangeError{Field: "Pointer", Value: v}
	}
	return Pointer(v), nil
}

// IsNull reports whether x is the null pointer.
func (x Pointer) IsNull() bool { return x == 0 }

// IGES implements the [Object] interface.
func (x Pointer) IGES() string {
	return strconv.FormatInt(int64(x), 10)
}

// IntOrPointer represents a field which holds either a non-negative
// integer literal or a pointer.  Pointers are stored (and rendered)
// negated; the value 0 acts as a default.
type IntOrPointer int32

// NewIntOrPointer checks that v is in the combined legal range
// [-9999999, 2147483647].
func NewIntOrPointer(v int64) (IntOrPointer, error) {
	if v < pointerMin || v > intMax {
		return 0, &RangeError{Field: "IntOrPointer", Value: v}
	}
	return IntOrPointer(v), nil
}

// IsPointer reports whether x holds a pointer.
func (x IntOrPointer) IsPointer() bool { return x < 0 }

// IGES implements the [Object] interface.
func (x IntOrPointer) IGES() string {
	return strconv.FormatInt(int64(x), 10)
}

// Boolean represents a logical field, rendered as "0" or "1".
type Boolean bool

// IGES implements the [Object] interface.
func (x Boolean) IGES() string {
	if x {
		return "1"
	}
	return "0"
}

// Date represents a timestamp field, rendered as a 15-character Hollerith
// string "15Hyyyymmdd.hhmmss" in UTC.
type Date time.Time

// IGES implements the [Object] interface.
func (x Date) IGES() string {
	return "15H" + time.Time(x).UTC().Format("20060102.150405")
}

// typeName returns the name of obj's value type, for error messages.
func typeName(obj Object) string {
	switch obj.(type) {
	case defaultValue:
		return "Default"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case String:
		return "String"
	case LiteralString:
		return "LiteralString"
	case Pointer:
		return "Pointer"
	case IntOrPointer:
		return "IntOrPointer"
	case Boolean:
		return "Boolean"
	case Date:
		return "Date"
	default:
		return fmt.Sprintf("%T", obj)
	}
}

func conversionError(obj Object, to string) error {
	return &ConversionError{From: typeName(obj), To: to, Value: obj.IGES()}
}

// The as* functions implement the widening views between value types.
// Each either succeeds exactly or fails with a *ConversionError; values
// are never silently truncated.  Default converts to Default under every
// view.

func asInteger(obj Object) (Object, error) {
	switch x := obj.(type) {
	case defaultValue:
		return Default, nil
	case Integer:
		return x, nil
	case Boolean:
		if x {
			return Integer(1), nil
		}
		return Integer(0), nil
	case IntOrPointer:
		if x >= 0 {
			return Integer(x), nil
		}
	}
	return nil, conversionError(obj, "Integer")
}

func asFloat(obj Object) (Object, error) {
	switch x := obj.(type) {
	case defaultValue:
		return Default, nil
	case Float:
		return x, nil
	}
	return nil, conversionError(obj, "Float")
}

func asDouble(obj Object) (Object, error) {
	switch x := obj.(type) {
	case defaultValue:
		return Default, nil
	case Double:
		return x, nil
	}
	return nil, conversionError(obj, "Double")
}

func asString(obj Object) (Object, error) {
	switch x := obj.(type) {
	case defaultValue:
		return Default, nil
	case String:
		return x, nil
	case LiteralString:
		return String(x), nil
	}
	return nil, conversionError(obj, "String")
}

func asLiteralString(obj Object) (Object, error) {
	switch x := obj.(type) {
	case defaultValue:
		return Default, nil
	case LiteralString:
		return x, nil
	case String:
		return LiteralString(x), nil
	}
	return nil, conversionError(obj, "LiteralString")
}

func asPointer(obj Object) (Object, error) {
	switch x := obj.(type) {
	case defaultValue:
		return Default, nil
	case Pointer:
		return x, nil
	case IntOrPointer:
		if x <= 0 {
			return Pointer(-x), nil
		}
	}
	return nil, conversionError(obj, "Pointer")
}

func asIntOrPointer(obj Object) (Object, error) {
	switch x := obj.(type) {
	case defaultValue:
		return Default, nil
	case IntOrPointer:
		return x, nil
	case Integer:
		if x >= 0 {
			return IntOrPointer(x), nil
		}
	case Pointer:
		return IntOrPointer(-x), nil
	}
	return nil, conversionError(obj, "IntOrPointer")
}

func asBoolean(obj Object) (Object, error) {
	switch x := obj.(type) {
	case defaultValue:
		return Default, nil
	case Boolean:
		return x, nil
	case Integer:
		switch x {
		case 0:
			return Boolean(false), nil
		case 1:
			return Boolean(true), nil
		}
	}
	return nil, conversionError(obj, "Boolean")
}

func asDate(obj Object) (Object, error) {
	switch x := obj.(type) {
	case defaultValue:
		return Default, nil
	case Date:
		return x, nil
	}
	return nil, conversionError(obj, "Date")
}

// intValue returns the numeric payload of an Integer-viewable value, with
// Default acting as 0.
func intValue(obj Object) (int, error) {
	converted, err := asInteger(obj)
	if err != nil {
		return 0, err
	}
	if x, ok := converted.(Integer); ok {
		return int(x), nil
	}
	return 0, nil
}
