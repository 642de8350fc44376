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
	"bytes"
	"io"
	"os"
)

// File is an IGES file under construction.  The five sections are filled
// strictly in order: AddStart, then AddGlobal, then AddEntity once per
// entity, then AddTerminate, and finally WriteTo or WriteFile.  A File is
// built once; construction aborts on the first validation failure and no
// partial output is ever written.
type File struct {
	start     section
	global    section
	dirEntry  section
	paramData section
	terminate section
}

// NewFile creates an empty IGES file.
func NewFile() *File {
	return &File{
		start:     section{letter: letterStart},
		global:    section{letter: letterGlobal},
		dirEntry:  section{letter: letterDirEntry},
		paramData: section{letter: letterParamData},
		terminate: section{letter: letterTerminate},
	}
}

// AddStart appends a Start section card carrying free text of at most 72
// characters.
func (f *File) AddStart(text string) error {
	_, err := f.start.appendCard(func(seq Pointer) (card, error) {
		return newStartCard(seq, text)
	})
	return err
}

// AddGlobal slices the global parameter sequence into Global section
// cards.  The list is normally built with [List.AppendGlobalParams].
func (f *File) AddGlobal(global List) error {
	begin := 0
	for begin < len(global) {
		end, err := splitIndex(global, begin, globalWidth)
		if err != nil {
			return err
		}
		eor := end == len(global)
		params := global[begin:end]
		_, err = f.global.appendCard(func(seq Pointer) (card, error) {
			return &globalCard{seq: seq, eor: eor, params: params}, nil
		})
		if err != nil {
			return err
		}
		begin = end
	}
	return nil
}

// AddEntity appends one entity: its parameter data cards, followed by its
// two directory entry cards.  dirEntry must contain the 15 fields built
// by [List.AppendDirEntryParams]; params is the parameter data sequence,
// beginning with the entity type code, as built by
// [List.AppendSurfaceParams].  The returned pointer references the
// entity's first directory entry card.
func (f *File) AddEntity(dirEntry, params List) (Pointer, error) {
	if len(dirEntry) != numDirEntryParams {
		return 0, &DimensionError{
			Field: "directory entry parameters",
			Got:   len(dirEntry),
			Want:  numDirEntryParams,
		}
	}
	if len(params) == 0 {
		return 0, &DimensionError{Field: "parameter data", Got: 0, Want: 1}
	}
	entityTypeObj, err := asInteger(params[0])
	if err != nil {
		return 0, err
	}
	entityType, ok := entityTypeObj.(Integer)
	if !ok {
		return 0, conversionError(params[0], "Integer")
	}
	if entityType < 0 || entityType > 99999999 {
		return 0, &RangeError{Field: "entity type", Value: int(entityType)}
	}

	// The back-pointer of every parameter data card is the sequence
	// number of the first directory entry card this entity will receive.
	firstDE, err := f.dirEntry.nextPtr()
	if err != nil {
		return 0, err
	}
	firstPD, err := f.paramData.nextPtr()
	if err != nil {
		return 0, err
	}

	lineCount := 0
	begin := 0
	for begin < len(params) {
		end, err := splitIndex(params, begin, paramDataWidth)
		if err != nil {
			return 0, err
		}
		eor := end == len(params)
		slice := params[begin:end]
		_, err = f.paramData.appendCard(func(seq Pointer) (card, error) {
			return &paramCard{seq: seq, eor: eor, backPtr: firstDE, params: slice}, nil
		})
		if err != nil {
			return 0, err
		}
		lineCount++
		begin = end
	}

	_, err = f.dirEntry.appendCard(func(seq Pointer) (card, error) {
		return makeDirEntryCard1(seq, entityType, firstPD, dirEntry)
	})
	if err != nil {
		return 0, err
	}
	_, err = f.dirEntry.appendCard(func(seq Pointer) (card, error) {
		return makeDirEntryCard2(seq, entityType, lineCount, dirEntry)
	})
	if err != nil {
		return 0, err
	}

	return firstDE, nil
}

// makeDirEntryCard1 views the first ten directory entry parameters as
// their field types and re-checks the card-level domains, so that a
// hand-assembled list cannot produce an invalid card.
func makeDirEntryCard1(seq Pointer, entityType Integer, paramData Pointer, dirEntry List) (card, error) {
	structure, err := asIntOrPointer(dirEntry[0])
	if err != nil {
		return nil, err
	}
	if x, ok := structure.(IntOrPointer); ok && x > 0 {
		return nil, &RangeError{Field: "structure", Value: int(x)}
	}
	lineFont, err := asIntOrPointer(dirEntry[1])
	if err != nil {
		return nil, err
	}
	if x, ok := lineFont.(IntOrPointer); ok && x > LinePatternDotted {
		return nil, &EnumError{Field: "line font pattern", Value: int(x)}
	}
	level, err := asIntOrPointer(dirEntry[2])
	if err != nil {
		return nil, err
	}
	if x, ok := level.(IntOrPointer); ok && x > 99999999 {
		return nil, &RangeError{Field: "level", Value: int(x)}
	}
	view, err := asPointer(dirEntry[3])
	if err != nil {
		return nil, err
	}
	transform, err := asPointer(dirEntry[4])
	if err != nil {
		return nil, err
	}
	labelAssoc, err := asPointer(dirEntry[5])
	if err != nil {
		return nil, err
	}

	var status [4]int
	limits := [4]struct {
		field string
		max   int
	}{
		{"blank status", StatusBlanked},
		{"subordinate status", SubordBoth},
		{"use status", UseConstruction},
		{"hierarchy status", HierHierarchy},
	}
	for i := range status {
		v, err := intValue(dirEntry[6+i])
		if err != nil {
			return nil, err
		}
		if v < 0 || v > limits[i].max {
			return nil, &EnumError{Field: limits[i].field, Value: v}
		}
		status[i] = v
	}

	return &dirEntryCard1{
		seq:        seq,
		entityType: entityType,
		paramData:  paramData,
		structure:  structure,
		lineFont:   lineFont,
		level:      level,
		view:       view,
		transform:  transform,
		labelAssoc: labelAssoc,
		status:     status,
	}, nil
}

// makeDirEntryCard2 views the last five directory entry parameters as
// their field types and re-checks the card-level domains.
func makeDirEntryCard2(seq Pointer, entityType Integer, lineCount int, dirEntry List) (card, error) {
	lineWeight, err := intValue(dirEntry[10])
	if err != nil {
		return nil, err
	}
	if lineWeight < 0 || lineWeight > 99999999 {
		return nil, &RangeError{Field: "line weight", Value: lineWeight}
	}
	color, err := asIntOrPointer(dirEntry[11])
	if err != nil {
		return nil, err
	}
	if x, ok := color.(IntOrPointer); ok && x > ColorWhite {
		return nil, &EnumError{Field: "color number", Value: int(x)}
	}
	form, err := intValue(dirEntry[12])
	if err != nil {
		return nil, err
	}
	if form < -9999999 || form > 99999999 {
		return nil, &RangeError{Field: "form number", Value: form}
	}
	label, err := asLiteralString(dirEntry[13])
	if err != nil {
		return nil, err
	}
	if x, ok := label.(LiteralString); ok && len(x) > 8 {
		return nil, &RangeError{Field: "entity label", Value: string(x)}
	}
	subscript, err := intValue(dirEntry[14])
	if err != nil {
		return nil, err
	}
	if subscript < 0 || subscript > 99999999 {
		return nil, &RangeError{Field: "entity subscript", Value: subscript}
	}
	countVal, err := NewInteger(int64(lineCount))
	if err != nil {
		return nil, err
	}

	return &dirEntryCard2{
		seq:        seq,
		entityType: entityType,
		lineWeight: Integer(lineWeight),
		color:      color,
		lineCount:  countVal,
		form:       Integer(form),
		label:      label,
		subscript:  Integer(subscript),
	}, nil
}

// AddTerminate appends the Terminate section card.  Each of the other
// four sections must contain at least one card.
func (f *File) AddTerminate() error {
	_, err := f.terminate.appendCard(func(seq Pointer) (card, error) {
		return newTerminateCard(seq,
			f.start.lastPtr(),
			f.global.lastPtr(),
			f.dirEntry.lastPtr(),
			f.paramData.lastPtr())
	})
	return err
}

// WriteTo writes all cards of the five sections, in section order, each
// record followed by a newline.
func (f *File) WriteTo(w io.Writer) error {
	for _, s := range []*section{&f.start, &f.global, &f.dirEntry, &f.paramData, &f.terminate} {
		if err := s.write(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the file to the named path.  The output is assembled
// in memory first, so a failed build never leaves a partial file behind.
func (f *File) WriteFile(name string) error {
	buf := &bytes.Buffer{}
	if err := f.WriteTo(buf); err != nil {
		return err
	}
	return os.WriteFile(name, buf.Bytes(), 0o644)
}
