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

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
)

// This file implements the graphics state operators.

// GSave saves the current graphics state, including the current path.
//
// This implements the PostScript operator "gsave".
func (w *Writer) GSave() {
	if w.Err != nil {
		return
	}
	w.stack = append(w.stack, savedState{
		ctm:       w.CTM,
		lineWidth: w.LineWidth,
		fontSize:  w.FontSize,
		path:      w.path,
	})
	w.emit("gsave")
}

// GRestore restores the graphics state saved by the matching call to
// [Writer.GSave].
//
// This implements the PostScript operator "grestore".
func (w *Writer) GRestore() {
	if w.Err != nil {
		return
	}
	if len(w.stack) == 0 {
		w.Err = errors.New("GRestore: no matching GSave")
		return
	}
	n := len(w.stack) - 1
	s := w.stack[n]
	w.stack = w.stack[:n]
	w.CTM = s.ctm
	w.LineWidth = s.lineWidth
	w.FontSize = s.fontSize
	w.path = s.path

	w.emit("grestore")
}

// Translate moves the origin of the user coordinate system to (tx, ty).
//
// This implements the PostScript operator "translate".
func (w *Writer) Translate(tx, ty float64) {
	w.emit(w.num(tx), w.num(ty), "translate")
	w.CTM = matrix.Matrix{1, 0, 0, 1, tx, ty}.Mul(w.CTM)
}

// Rotate rotates the user coordinate system counterclockwise by the given
// angle, in degrees.
//
// This implements the PostScript operator "rotate".
func (w *Writer) Rotate(angle float64) {
	w.emit(w.num(angle), "rotate")
	s, c := math.Sincos(angle * math.Pi / 180)
	w.CTM = matrix.Matrix{c, s, -s, c, 0, 0}.Mul(w.CTM)
}

// Scale scales the axes of the user coordinate system.
//
// This implements the PostScript operator "scale".
func (w *Writer) Scale(sx, sy float64) {
	w.emit(w.num(sx), w.num(sy), "scale")
	w.CTM = matrix.Matrix{sx, 0, 0, sy, 0, 0}.Mul(w.CTM)
}

// SetLineWidth sets the line width.
//
// This implements the PostScript operator "setlinewidth".
func (w *Writer) SetLineWidth(width float64) {
	if w.Err != nil {
		return
	}
	if width < 0 {
		w.Err = fmt.Errorf("SetLineWidth: negative width %g", width)
		return
	}
	w.emit(w.num(width), "setlinewidth")
	w.LineWidth = width
}
