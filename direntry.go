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

// numDirEntryParams is the number of fields a directory entry parameter
// block contains.
const numDirEntryParams = 15

// DirEntryParams describes one entity's directory entry, excluding the
// fields the file container fills in itself (entity type, parameter data
// pointer, and parameter line count).
//
// The slots Structure, LineFont, Level and Color accept nil (default), an
// Integer (a literal value, which must be zero for Structure), a Pointer,
// or an IntOrPointer.  The slots View, Transform and LabelAssoc accept nil
// (default), Integer(0), a Pointer, or an IntOrPointer holding a pointer.
type DirEntryParams struct {
	Structure  Object
	LineFont   Object
	Level      Object
	View       Object
	Transform  Object
	LabelAssoc Object

	// The four status sub-fields.
	BlankStatus  int // StatusVisible .. StatusBlanked
	SubordStatus int // SubordIndependent .. SubordBoth
	UseStatus    int // UseGeometry .. UseConstruction
	HierStatus   int // HierTopDown .. HierHierarchy

	// LineWeight selects one of the line weight gradations, or 0 for the
	// receiving system's default.
	LineWeight int

	// Color is a color number (ColorNone .. ColorWhite) or a pointer to a
	// color definition entity.
	Color Object

	// Form is the entity form number.
	Form int

	// Label is the entity label, at most 8 characters.
	Label string

	// Subscript is the entity subscript number.
	Subscript int
}

// flexSlot widens v into an IntOrPointer field.  A nil slot yields a
// defaulted field; an integer yields a literal, which must be
// non-negative.
func flexSlot(v Object) (Object, error) {
	if v == nil {
		return Default, nil
	}
	converted, err := asIntOrPointer(v)
	if err != nil {
		return nil, err
	}
	return converted, nil
}

// ptrSlot widens v into a Pointer field.  A nil slot yields a defaulted
// field; the only integer accepted is an explicit zero.
func ptrSlot(field string, v Object) (Object, error) {
	if v == nil {
		return Default, nil
	}
	if x, ok := v.(Integer); ok {
		if x != 0 {
			return nil, &RangeError{Field: field, Value: int(x)}
		}
		return Pointer(0), nil
	}
	converted, err := asPointer(v)
	if err != nil {
		return nil, err
	}
	return converted, nil
}

// AppendDirEntryParams appends the 15 fields of a directory entry
// parameter block, validating each against its legal domain.
func (l *List) AppendDirEntryParams(p *DirEntryParams) error {
	structure, err := flexSlot(p.Structure)
	if err != nil {
		return err
	}
	if x, ok := structure.(IntOrPointer); ok && x > 0 {
		return &RangeError{Field: "structure", Value: int(x)}
	}

	lineFont, err := flexSlot(p.LineFont)
	if err != nil {
		return err
	}
	if x, ok := lineFont.(IntOrPointer); ok && x > LinePatternDotted {
		return &EnumError{Field: "line font pattern", Value: int(x)}
	}

	level, err := flexSlot(p.Level)
	if err != nil {
		return err
	}
	if x, ok := level.(IntOrPointer); ok && x > 99999999 {
		return &RangeError{Field: "level", Value: int(x)}
	}

	view, err := ptrSlot("view", p.View)
	if err != nil {
		return err
	}
	transform, err := ptrSlot("transformation matrix", p.Transform)
	if err != nil {
		return err
	}
	labelAssoc, err := ptrSlot("label display associativity", p.LabelAssoc)
	if err != nil {
		return err
	}

	if p.BlankStatus < 0 || p.BlankStatus > StatusBlanked {
		return &EnumError{Field: "blank status", Value: p.BlankStatus}
	}
	if p.SubordStatus < 0 || p.SubordStatus > SubordBoth {
		return &EnumError{Field: "subordinate status", Value: p.SubordStatus}
	}
	if p.UseStatus < 0 || p.UseStatus > UseConstruction {
		return &EnumError{Field: "use status", Value: p.UseStatus}
	}
	if p.HierStatus < 0 || p.HierStatus > HierHierarchy {
		return &EnumError{Field: "hierarchy status", Value: p.HierStatus}
	}
	if p.LineWeight < 0 || p.LineWeight > 99999999 {
		return &RangeError{Field: "line weight", Value: p.LineWeight}
	}

	color, err := flexSlot(p.Color)
	if err != nil {
		return err
	}
	if x, ok := color.(IntOrPointer); ok && x > ColorWhite {
		return &EnumError{Field: "color number", Value: int(x)}
	}

	if p.Form < -9999999 || p.Form > 99999999 {
		return &RangeError{Field: "form number", Value: p.Form}
	}
	if len(p.Label) > 8 {
		return &RangeError{Field: "entity label", Value: p.Label}
	}
	if p.Subscript < 0 || p.Subscript > 99999999 {
		return &RangeError{Field: "entity subscript", Value: p.Subscript}
	}

	l.Append(structure)
	l.Append(lineFont)
	l.Append(level)
	l.Append(view)
	l.Append(transform)
	l.Append(labelAssoc)
	if err := l.AppendInteger(p.BlankStatus); err != nil {
		return err
	}
	if err := l.AppendInteger(p.SubordStatus); err != nil {
		return err
	}
	if err := l.AppendInteger(p.UseStatus); err != nil {
		return err
	}
	if err := l.AppendInteger(p.HierStatus); err != nil {
		return err
	}
	if err := l.AppendInteger(p.LineWeight); err != nil {
		return err
	}
	l.Append(color)
	if err := l.AppendInteger(p.Form); err != nil {
		return err
	}
	l.AppendLiteralString(p.Label)
	return l.AppendInteger(p.Subscript)
}
