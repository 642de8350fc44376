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

package spline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/iges"
)

// ConvertOptions configures the conversion of surfaces to an IGES file.
type ConvertOptions struct {
	// ProductID is the product identification embedded in the IGES file.
	// It must be non-empty and at most 68 characters long.
	ProductID string

	// FileName is the file name embedded in the IGES file, also used as
	// the start section text.  It must be non-empty and at most 68
	// characters long.
	FileName string

	// LabelPrefix is prepended to the surface index to form entity
	// labels.  Labels are limited to 8 characters, so a short prefix
	// is required: at most 7 characters for up to ten surfaces, 6 for
	// up to a hundred, and so on.
	LabelPrefix string
}

func checkName(field, val string) error {
	if val == "" {
		return fmt.Errorf("spline: %s must not be empty", field)
	}
	if len(val) > 68 {
		return fmt.Errorf("spline: %s longer than 68 characters", field)
	}
	return nil
}

// ToIGES writes the surfaces as one IGES file, one type 128 entity per
// surface.  The real-world control nets are used; the model space unit
// is meters.  Line width and resolution are derived from the merged
// real-world bounding box of all surfaces.
func ToIGES(w io.Writer, opt *ConvertOptions, surfaces ...*Surface) error {
	if err := checkName("product ID", opt.ProductID); err != nil {
		return err
	}
	if err := checkName("file name", opt.FileName); err != nil {
		return err
	}
	if len(surfaces) == 0 {
		return fmt.Errorf("spline: no surfaces to convert")
	}

	box := emptyBox()
	for _, s := range surfaces {
		if err := s.Check(); err != nil {
			return err
		}
		box = box.Merge(s.RealBounds())
	}
	span := box.MaxSpan()

	f := iges.NewFile()
	if err := f.AddStart(opt.FileName); err != nil {
		return err
	}

	var global iges.List
	err := global.AppendGlobalParams(&iges.GlobalParams{
		ProductID:       opt.ProductID,
		FileName:        opt.FileName,
		Unit:            iges.UnitMeter,
		LineWeightCount: 1,
		MaxLineWeight:   0.003 * span,
		MinResolution:   0.00001 * span,
		MaxCoordinate:   0,
	})
	if err != nil {
		return err
	}
	if err := f.AddGlobal(global); err != nil {
		return err
	}

	for i, s := range surfaces {
		var dirEntry iges.List
		err := dirEntry.AppendDirEntryParams(&iges.DirEntryParams{
			LineFont:     iges.Integer(0),
			Level:        iges.Integer(0),
			View:         iges.Integer(0),
			Transform:    iges.Integer(0),
			LabelAssoc:   iges.Integer(0),
			BlankStatus:  iges.StatusVisible,
			SubordStatus: iges.SubordIndependent,
			UseStatus:    iges.UseGeometry,
			HierStatus:   iges.HierTopDown,
			Color:        iges.Integer(iges.ColorNone),
			Form:         iges.FormData,
			Label:        opt.LabelPrefix + strconv.Itoa(i),
		})
		if err != nil {
			return err
		}

		// The v direction becomes the first IGES axis.
		nu := s.NumU()
		nv := s.NumV()
		var params iges.List
		err = params.AppendSurfaceParams(&iges.SurfaceParams{
			K1:     nv - 1,
			K2:     nu - 1,
			M1:     s.DegV,
			M2:     s.DegU,
			Knots1: s.V,
			Knots2: s.U,
			X:      s.Rx,
			Y:      s.Ry,
			Z:      s.Rz,
			U0:     s.V[s.DegV],
			U1:     s.V[nv],
			V0:     s.U[s.DegU],
			V1:     s.U[nu],
		})
		if err != nil {
			return err
		}

		if _, err := f.AddEntity(dirEntry, params); err != nil {
			return err
		}
	}

	if err := f.AddTerminate(); err != nil {
		return err
	}
	return f.WriteTo(w)
}

// ConvertFiles reads the named surface files and writes them as one IGES
// file.  The output is assembled in memory first, so a failed conversion
// leaves no partial file behind.
func ConvertFiles(igesName string, opt *ConvertOptions, splineNames ...string) error {
	surfaces := make([]*Surface, len(splineNames))
	for i, name := range splineNames {
		s, err := ReadFile(name)
		if err != nil {
			return err
		}
		surfaces[i] = s
	}

	buf := &bytes.Buffer{}
	if err := ToIGES(buf, opt, surfaces...); err != nil {
		return err
	}
	return os.WriteFile(igesName, buf.Bytes(), 0o644)
}

// FindSeries returns the names of a numbered file series: pattern must
// contain one "%d" verb, and files are collected for increasing indices
// starting at first until the first missing file.  At least one file
// must exist.
func FindSeries(dir, pattern string, first int) ([]string, error) {
	if strings.Count(pattern, "%") != 1 || strings.Count(pattern, "%d") != 1 {
		return nil, fmt.Errorf("spline: pattern %q must contain exactly one %%d verb", pattern)
	}

	var names []string
	for index := first; ; index++ {
		name := filepath.Join(dir, fmt.Sprintf(pattern, index))
		if _, err := os.Stat(name); err != nil {
			break
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("spline: no files found in %s matching %q", dir, pattern)
	}
	return names, nil
}
