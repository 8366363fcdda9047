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

package graphics

import "math"

// This file implements the path construction and path painting operators.

// NewPath clears the current path.
//
// This implements the PostScript operator "newpath".
func (w *Writer) NewPath() {
	w.path = pathState{}
	w.emit("newpath")
}

// MoveTo starts a new subpath at the given coordinates.
//
// This implements the PostScript operator "moveto".
func (w *Writer) MoveTo(x, y float64) {
	w.emit(w.num(x), w.num(y), "moveto")
	w.path.curX, w.path.curY = x, y
	w.path.hasCur = true
	w.addPoint(x, y)
}

// RLineTo appends a straight line segment from the current point to the
// current point displaced by (dx, dy).
//
// This implements the PostScript operator "rlineto".
func (w *Writer) RLineTo(dx, dy float64) {
	if w.Err != nil {
		return
	}
	if !w.path.hasCur {
		w.Err = errNoCurrentPoint
		return
	}
	w.emit(w.num(dx), w.num(dy), "rlineto")
	w.path.curX += dx
	w.path.curY += dy
	w.addPoint(w.path.curX, w.path.curY)
}

// ClosePath closes the current subpath.
//
// This implements the PostScript operator "closepath".
func (w *Writer) ClosePath() {
	w.emit("closepath")
}

// Fill fills the current path, using the nonzero winding number rule,
// and clears the path.
//
// This implements the PostScript operator "fill".
func (w *Writer) Fill() {
	w.emit("fill")
	w.paint(0)
}

// Stroke strokes the current path and clears the path.
//
// This implements the PostScript operator "stroke".
func (w *Writer) Stroke() {
	w.emit("stroke")

	// half the line width, converted to page units
	det := w.CTM[0]*w.CTM[3] - w.CTM[1]*w.CTM[2]
	w.paint(w.LineWidth / 2 * math.Sqrt(math.Abs(det)))
}

// Clip intersects the clipping path with the current path.
// The current path is kept.
//
// This implements the PostScript operator "clip".
func (w *Writer) Clip() {
	w.emit("clip")
}
