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
	"strings"
)

// A card is one 80-column physical record.  Cards are immutable once
// constructed; all field validation happens before a card is built, so
// the encoding methods panic if a rendered field does not fit its
// columns.
type card interface {
	// encode returns the 80-column record image.
	encode() string
}

// justify right-justifies the rendering of obj in a field of the given
// width.
func justify(obj Object, width int) string {
	s := fmt.Sprintf("%*s", width, obj.IGES())
	if len(s) != width {
		panic(fmt.Sprintf("iges: field wider than %d columns: [%s]", width, s))
	}
	return s
}

// encode80 assembles a full record from up to 72 columns of content, the
// section letter, and the card's sequence number.
func encode80(content string, letter byte, seq Pointer) string {
	s := fmt.Sprintf("%-72s%c%7s", content, letter, seq.IGES())
	if len(s) != 80 {
		panic(fmt.Sprintf("iges: record length error: [%s]", s))
	}
	return s
}

// freeform joins the renderings of params with the parameter separator.
// On the last card of a sequence (eor true) the final field is followed
// by the record terminator instead.
func freeform(params []Object, eor bool) string {
	b := &strings.Builder{}
	for i, obj := range params {
		b.WriteString(obj.IGES())
		if eor && i+1 == len(params) {
			b.WriteByte(recTerm)
		} else {
			b.WriteByte(paramSep)
		}
	}
	return b.String()
}

// startCard carries free text in the Start section.
type startCard struct {
	seq  Pointer
	text LiteralString
}

func newStartCard(seq Pointer, text string) (*startCard, error) {
	if len(text) > startWidth {
		return nil, &FieldSizeError{Value: text, Budget: startWidth}
	}
	return &startCard{seq: seq, text: LiteralString(text)}, nil
}

func (c *startCard) encode() string {
	return encode80(c.text.IGES(), letterStart, c.seq)
}

// globalCard carries a slice of the global parameter sequence.
type globalCard struct {
	seq    Pointer
	eor    bool
	params []Object
}

func (c *globalCard) encode() string {
	return encode80(freeform(c.params, c.eor), letterGlobal, c.seq)
}

// dirEntryCard1 is the first of the two fixed-field directory entry cards
// of an entity.
type dirEntryCard1 struct {
	seq        Pointer
	entityType Integer
	paramData  Pointer
	structure  Object // IntOrPointer or Default
	lineFont   Object // IntOrPointer or Default
	level      Object // IntOrPointer or Default
	view       Object // Pointer or Default
	transform  Object // Pointer or Default
	labelAssoc Object // Pointer or Default
	status     [4]int // blank, subordinate, use, hierarchy
}

func (c *dirEntryCard1) statusCode() int {
	return c.status[0]*1000000 + c.status[1]*10000 + c.status[2]*100 + c.status[3]
}

func (c *dirEntryCard1) encode() string {
	content := justify(c.entityType, 8) +
		justify(c.paramData, 8) +
		justify(c.structure, 8) +
		justify(c.lineFont, 8) +
		justify(c.level, 8) +
		justify(c.view, 8) +
		justify(c.transform, 8) +
		justify(c.labelAssoc, 8) +
		fmt.Sprintf("%08d", c.statusCode())
	return encode80(content, letterDirEntry, c.seq)
}

// dirEntryCard2 is the second fixed-field directory entry card.
type dirEntryCard2 struct {
	seq        Pointer
	entityType Integer
	lineWeight Integer
	color      Object // IntOrPointer or Default
	lineCount  Integer
	form       Integer
	label      Object // LiteralString or Default
	subscript  Integer
}

func (c *dirEntryCard2) encode() string {
	content := justify(c.entityType, 8) +
		justify(c.lineWeight, 8) +
		justify(c.color, 8) +
		justify(c.lineCount, 8) +
		justify(c.form, 8) +
		strings.Repeat(" ", 16) +
		justify(c.label, 8) +
		justify(c.subscript, 8)
	return encode80(content, letterDirEntry, c.seq)
}

// paramCard carries a slice of an entity's parameter data, followed by a
// back-pointer to the entity's first directory entry card.
type paramCard struct {
	seq     Pointer
	eor     bool
	backPtr Pointer
	params  []Object
}

func (c *paramCard) encode() string {
	content := fmt.Sprintf("%-*s %7s",
		paramDataWidth, freeform(c.params, c.eor), c.backPtr.IGES())
	return encode80(content, letterParamData, c.seq)
}

// terminateCard closes the file, referencing the final sequence number of
// each of the other four sections.
type terminateCard struct {
	seq           Pointer
	lastStart     Pointer
	lastGlobal    Pointer
	lastDirEntry  Pointer
	lastParamData Pointer
}

func newTerminateCard(seq, lastStart, lastGlobal, lastDirEntry, lastParamData Pointer) (*terminateCard, error) {
	for _, s := range []struct {
		letter byte
		last   Pointer
	}{
		{letterStart, lastStart},
		{letterGlobal, lastGlobal},
		{letterDirEntry, lastDirEntry},
		{letterParamData, lastParamData},
	} {
		if s.last <= 0 {
			return nil, &EmptySectionError{Letter: s.letter}
		}
	}
	return &terminateCard{
		seq:           seq,
		lastStart:     lastStart,
		lastGlobal:    lastGlobal,
		lastDirEntry:  lastDirEntry,
		lastParamData: lastParamData,
	}, nil
}

func (c *terminateCard) encode() string {
	content := fmt.Sprintf("%c%7s%c%7s%c%7s%c%7s",
		letterStart, c.lastStart.IGES(),
		letterGlobal, c.lastGlobal.IGES(),
		letterDirEntry, c.lastDirEntry.IGES(),
		letterParamData, c.lastParamData.IGES())
	return encode80(content, letterTerminate, c.seq)
}
