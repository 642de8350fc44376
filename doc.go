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

// Package iges provides support for writing IGES files.
//
// IGES (Initial Graphics Exchange Specification) is a column-fixed ASCII
// interchange format for CAD data.  A file consists of five sections
// (Start, Global, Directory Entry, Parameter Data, Terminate), each made of
// 80-character records ("cards"): columns 1-72 carry content, column 73 the
// section letter, and columns 74-80 a right-justified sequence number which
// doubles as a pointer for cross-references between sections.
//
// A file is built once, linearly, and then written whole:
//
//	f := iges.NewFile()
//	err := f.AddStart("my part")
//	...
//	var global iges.List
//	err = global.AppendGlobalParams(&iges.GlobalParams{...})
//	err = f.AddGlobal(global)
//	...
//	_, err = f.AddEntity(dirEntry, params)
//	...
//	err = f.AddTerminate()
//	err = f.WriteFile("out.igs")
//
// The only entity type this package can emit is the rational B-spline
// surface (type 128).  Reading IGES files back is not supported.
package iges
