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

// Delimiters used within records.
const (
	paramSep = ','
	recTerm  = ';'
	lineTerm = "\n"
)

// Section letter codes (column 73).
const (
	letterStart     = 'S'
	letterGlobal    = 'G'
	letterDirEntry  = 'D'
	letterParamData = 'P'
	letterTerminate = 'T'
)

// Content width, in columns, for the free-form sections.
const (
	startWidth     = 72
	globalWidth    = 72
	paramDataWidth = 64
)

// Numeric characteristics advertised in the global section, and the legal
// domains of the typed values.
const (
	intBits = 32
	intMin  = -2147483647
	intMax  = 2147483647

	floatExp    = 38
	floatDigits = 6
	floatMin    = 1.0e-38
	floatMax    = 1.0e38

	doubleExp    = 38
	doubleDigits = 15
	doubleMin    = 1.0e-38
	doubleMax    = 1.0e38

	pointerMin = -9999999
	pointerMax = 9999999
)

// The native system identifier embedded in the global section, and the IGES
// version flag (11 = IGES 5.3).
const (
	systemID    = "go-iges"
	versionFlag = 11
)

// Unit represents the model space unit of an IGES file.
type Unit int

// The units an IGES file can declare.  UnitUnspecified (flag 3) carries no
// unit name and is not accepted by the global parameter builder.
const (
	UnitInch        Unit = 1
	UnitMillimeter  Unit = 2
	UnitUnspecified Unit = 3
	UnitFoot        Unit = 4
	UnitMile        Unit = 5
	UnitMeter       Unit = 6
	UnitKilometer   Unit = 7
	UnitMil         Unit = 8
	UnitMicron      Unit = 9
	UnitCentimeter  Unit = 10
	UnitMicroinch   Unit = 11
)

var unitNames = map[Unit]string{
	UnitInch:       "IN",
	UnitMillimeter: "MM",
	UnitFoot:       "FT",
	UnitMile:       "MI",
	UnitMeter:      "M",
	UnitKilometer:  "KM",
	UnitMil:        "MIL",
	UnitMicron:     "UM",
	UnitCentimeter: "CM",
	UnitMicroinch:  "UIN",
}

// String returns the unit name used inside IGES files, or "" if u has none.
func (u Unit) String() string {
	return unitNames[u]
}

// Line font pattern numbers for the directory entry line-font field.
const (
	LinePatternUnspecified = 0
	LinePatternSolid       = 1
	LinePatternDashed      = 2
	LinePatternPhantom     = 3
	LinePatternCenterline  = 4
	LinePatternDotted      = 5
)

// Blank status values (first directory entry status sub-field).
const (
	StatusVisible = 0
	StatusBlanked = 1
)

// Subordinate entity switch values (second status sub-field).
const (
	SubordIndependent = 0
	SubordPhysical    = 1
	SubordLogical     = 2
	SubordBoth        = 3
)

// Entity use flag values (third status sub-field).
const (
	UseGeometry     = 0
	UseAnnotation   = 1
	UseDefinition   = 2
	UseOther        = 3
	UsePositional   = 4
	UseParametric   = 5
	UseConstruction = 6
)

// Hierarchy values (fourth status sub-field).
const (
	HierTopDown   = 0
	HierDefer     = 1
	HierHierarchy = 2
)

// Color numbers for the directory entry color field.
const (
	ColorNone    = 0
	ColorBlack   = 1
	ColorRed     = 2
	ColorGreen   = 3
	ColorBlue    = 4
	ColorYellow  = 5
	ColorMagenta = 6
	ColorCyan    = 7
	ColorWhite   = 8
)

// Entity type code for the rational B-spline surface, the one entity kind
// this package emits, and its form numbers.
const (
	entityBSplineSurface = 128

	FormData         = 0
	FormPlane        = 1
	FormRightCircCyl = 2
	FormCone         = 3
	FormSphere       = 4
	FormTorus        = 5
	FormSurfOfRev    = 6
	FormTabCyl       = 7
	FormRuledSurf    = 8
	FormGenQuadSurf  = 9
)
