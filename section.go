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

import "io"

// section is an append-only ordered list of cards sharing one letter
// code.  A card's sequence number equals its 1-based position in the
// section; this invariant is maintained by reserving the number and
// inserting the card as one step.
type section struct {
	letter byte
	cards  []card
}

// lastPtr returns a pointer to the most recently appended card, or the
// null pointer if the section is empty.
func (s *section) lastPtr() Pointer {
	return Pointer(len(s.cards))
}

// nextPtr returns the sequence number the next appended card will
// receive.
func (s *section) nextPtr() (Pointer, error) {
	return NewPointer(len(s.cards) + 1)
}

// appendCard reserves the next sequence number, passes it to mk, and
// inserts the returned card.  Reservation and insertion form one atomic
// step; if mk fails, no number is consumed.
func (s *section) appendCard(mk func(seq Pointer) (card, error)) (Pointer, error) {
	seq, err := s.nextPtr()
	if err != nil {
		return 0, err
	}
	c, err := mk(seq)
	if err != nil {
		return 0, err
	}
	s.cards = append(s.cards, c)
	return seq, nil
}

// write emits all cards of the section, each followed by the line
// terminator.
func (s *section) write(w io.Writer) error {
	for _, c := range s.cards {
		_, err := io.WriteString(w, c.encode()+lineTerm)
		if err != nil {
			return err
		}
	}
	return nil
}

// splitIndex returns the exclusive end of the longest range of values
// starting at begin whose renderings, each followed by one separator
// column, fit within budget columns.  The range always contains at least
// one value; a single value which does not fit on its own is an error.
func splitIndex(list List, begin, budget int) (int, error) {
	count := len(list[begin].IGES()) + 1
	if count > budget {
		return 0, &FieldSizeError{Value: list[begin].IGES(), Budget: budget}
	}
	end := begin + 1
	for ; end < len(list); end++ {
		count += len(list[end].IGES()) + 1
		if count > budget {
			break
		}
	}
	return end, nil
}
