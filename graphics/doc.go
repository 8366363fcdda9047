// pslib - a library for writing PostScript and EPS files
// Copyright (C) 2026  The pslib Authors
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

// Package graphics writes PostScript page descriptions.
//
// A [Writer] emits exactly one operator per output line, preceded by its
// operands.  Numbers are written in plain decimal notation.  Errors are
// sticky: once [Writer.Err] is set, all further operations are ignored.
//
// The writer keeps track of the current transformation matrix, so that it
// can report the extent of all painted paths in page coordinates.  This is
// used to compute bounding boxes for EPS files.
package graphics
