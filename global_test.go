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
	"testing"
	"time"
)

func TestGlobalParams(t *testing.T) {
	when := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	var global List
	err := global.AppendGlobalParams(&GlobalParams{
		ProductID:       "test product",
		FileName:        "test.igs",
		Unit:            UnitMeter,
		LineWeightCount: 1,
		MaxLineWeight:   0.5,
		MinResolution:   1e-5,
		MaxCoordinate:   100,
		Date:            when,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(global) != 24 {
		t.Fatalf("got %d global parameters, want 24", len(global))
	}

	// spot-check the positions the format fixes
	checks := []struct {
		idx  int
		want string
	}{
		{0, "1H,"},
		{1, "1H;"},
		{2, "12Htest product"},
		{3, "8Htest.igs"},
		{6, "32"},
		{11, ""}, // receiver product ID, defaulted
		{12, "1.0"},
		{13, "6"},
		{14, "1HM"},
		{15, "1"},
		{16, "0.5"},
		{17, "15H20260831.120000"},
		{18, "1.0D-05"},
		{19, "1.0D+02"},
		{20, ""},
		{21, ""},
		{22, "11"},
		{23, "0"},
	}
	for _, c := range checks {
		if got := global[c.idx].IGES(); got != c.want {
			t.Errorf("global[%d] = %q, want %q", c.idx, got, c.want)
		}
	}
}

func TestGlobalParamsDefaultDate(t *testing.T) {
	before := time.Now().Add(-time.Second)
	var global List
	err := global.AppendGlobalParams(&GlobalParams{
		ProductID:       "x",
		Unit:            UnitMillimeter,
		LineWeightCount: 1,
		MaxLineWeight:   1,
		MinResolution:   1e-5,
	})
	if err != nil {
		t.Fatal(err)
	}
	d, ok := global[17].(Date)
	if !ok {
		t.Fatalf("global[17] has type %s", typeName(global[17]))
	}
	if time.Time(d).Before(before) {
		t.Errorf("timestamp %v not current", time.Time(d))
	}
}

func TestGlobalParamsBadUnit(t *testing.T) {
	for _, unit := range []Unit{UnitUnspecified, 0, 12} {
		var global List
		err := global.AppendGlobalParams(&GlobalParams{Unit: unit})
		var enumErr *EnumError
		if !errors.As(err, &enumErr) {
			t.Errorf("unit %d: err = %v, want *EnumError", unit, err)
		}
		if len(global) != 0 {
			t.Errorf("unit %d: %d parameters appended on failure", unit, len(global))
		}
	}
}
