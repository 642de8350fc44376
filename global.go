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

// GlobalParams describes the global section of an IGES file.
type GlobalParams struct {
	// ProductID identifies the product inside the file.
	ProductID string

	// FileName is the file name embedded in the file.
	FileName string

	// Unit selects the model space unit.
	Unit Unit

	// LineWeightCount is the number of line weight gradations, at least 1.
	LineWeightCount int

	// MaxLineWeight is the width of the thickest line, in model units.
	MaxLineWeight float64

	// MinResolution is the smallest distance between coordinates which is
	// considered to be nonzero.
	MinResolution float64

	// MaxCoordinate is the largest absolute coordinate value occurring in
	// the model, or 0 if unknown.
	MaxCoordinate float64

	// Date is the file generation timestamp.  The zero value selects the
	// current time.
	Date time.Time
}

// AppendGlobalParams appends the fields of the global section, in the
// fixed order the format prescribes.  The unit must be one of the named
// units (UnitUnspecified carries no unit name and is rejected).
func (l *List) AppendGlobalParams(p *GlobalParams) error {
	unitName, ok := unitNames[p.Unit]
	if !ok {
		return &EnumError{Field: "units flag", Value: int(p.Unit)}
	}

	// delimiter characters
	l.AppendString(string(paramSep))
	l.AppendString(string(recTerm))

	// sender product identification and file name
	l.AppendString(p.ProductID)
	l.AppendString(p.FileName)

	// native system ID and preprocessor version
	l.AppendString(systemID)
	l.AppendString(systemID)

	// numeric characteristics
	for _, v := range []int{intBits, floatExp, floatDigits, doubleExp, doubleDigits} {
		if err := l.AppendInteger(v); err != nil {
			return err
		}
	}

	// receiver product identification
	l.AppendDefault()

	// model space scale
	if err := l.AppendFloat(1.0); err != nil {
		return err
	}

	// units flag and name
	if err := l.AppendInteger(int(p.Unit)); err != nil {
		return err
	}
	l.AppendString(unitName)

	// line weight gradations and maximum line weight
	if err := l.AppendInteger(p.LineWeightCount); err != nil {
		return err
	}
	if err := l.AppendFloat(p.MaxLineWeight); err != nil {
		return err
	}

	// file generation timestamp
	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}
	l.AppendDate(date)

	// minimum resolution and maximum coordinate value
	if err := l.AppendDouble(p.MinResolution); err != nil {
		return err
	}
	if err := l.AppendDouble(p.MaxCoordinate); err != nil {
		return err
	}

	// author and author's organization
	l.AppendDefault()
	l.AppendDefault()

	// version flag and drafting standard flag
	if err := l.AppendInteger(versionFlag); err != nil {
		return err
	}
	return l.AppendInteger(0)
}
