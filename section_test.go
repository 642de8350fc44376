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
	"errors"
	"strings"
	"testing"
)

func TestSectionPointers(t *testing.T) {
	s := &section{letter: letterStart}
	if s.lastPtr() != 0 {
		t.Errorf("lastPtr of empty section = %d", s.lastPtr())
	}
	for i := 1; i <= 3; i++ {
		seq, err := s.appendCard(func(seq Pointer) (card, error) {
			return newStartCard(seq, "")
		})
		if err != nil {
			t.Fatal(err)
		}
		if int(seq) != i {
			t.Errorf("card %d got sequence number %d", i, seq)
		}
		if s.lastPtr() != seq {
			t.Errorf("lastPtr = %d after appending card %d", s.lastPtr(), seq)
		}
	}
}

func TestSectionAppendFailure(t *testing.T) {
	s := &section{letter: letterStart}
	errBoom := errors.New("boom")
	_, err := s.appendCard(func(seq Pointer) (card, error) {
		return nil, errBoom
	})
	if err != errBoom {
		t.Fatalf("err = %v", err)
	}

	// the failed append must not consume a sequence number
	seq, err := s.appendCard(func(seq Pointer) (card, error) {
		return newStartCard(seq, "")
	})
	if err != nil {
		t.Fatal(err)
	}
	if seq != 1 {
		t.Errorf("sequence number %d after failed append", seq)
	}
}

func TestSplitIndex(t *testing.T) {
	list := List{
		Integer(1),        // "1", 1+1 columns
		String("abcdef"),  // "6Habcdef", 8+1 columns
		Double(0.5),       // "5.0D-01", 7+1 columns
		Integer(-1234567), // "-1234567", 8+1 columns
	}

	// a budget wide enough for everything
	end, err := splitIndex(list, 0, 72)
	if err != nil {
		t.Fatal(err)
	}
	if end != len(list) {
		t.Errorf("end = %d, want %d", end, len(list))
	}

	// exactly the first two fields fit in 11 columns
	end, err = splitIndex(list, 0, 11)
	if err != nil {
		t.Fatal(err)
	}
	if end != 2 {
		t.Errorf("end = %d, want 2", end)
	}

	// each returned range must hold at least one value
	begin := 0
	var steps int
	for begin < len(list) {
		end, err := splitIndex(list, begin, 9)
		if err != nil {
			t.Fatal(err)
		}
		if end <= begin {
			t.Fatalf("empty range at %d", begin)
		}
		begin = end
		steps++
	}
	if steps != 4 {
		t.Errorf("9-column budget packed %d cards, want 4", steps)
	}

	// a first field too wide for the budget is an error
	_, err = splitIndex(List{String(strings.Repeat("x", 80))}, 0, 72)
	var sizeErr *FieldSizeError
	if !errors.As(err, &sizeErr) {
		t.Errorf("err = %v, want *FieldSizeError", err)
	}
}
