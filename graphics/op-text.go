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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// SetFont selects the named font, scaled to the given size.
//
// This emits the PostScript operators "findfont", "scalefont" and "setfont".
func (w *Writer) SetFont(name string, size float64) {
	if w.Err != nil {
		return
	}
	if !IsValidName(name) {
		w.Err = fmt.Errorf("SetFont: invalid font name %q", name)
		return
	}
	if size <= 0 {
		w.Err = fmt.Errorf("SetFont: invalid font size %g", size)
		return
	}
	w.emit("/"+name, "findfont")
	w.emit(w.num(size), "scalefont")
	w.emit("setfont")
	w.FontSize = size
}

// Show paints the string s, starting at the current point, using the
// current font and color.  The characters of s are interpreted as
// single-byte character codes.
//
// The extent of the painted area is approximated by the start point and
// the font size, since glyph widths are not known.
//
// This implements the PostScript operator "show".
func (w *Writer) Show(s []byte) {
	if w.Err != nil {
		return
	}
	if !w.path.hasCur {
		w.Err = errNoCurrentPoint
		return
	}
	w.emit(FormatString(s), "show")

	x0, y0 := w.CTM.Apply(w.path.curX, w.path.curY)
	x1, y1 := w.CTM.Apply(w.path.curX, w.path.curY+w.FontSize)
	w.extend(rect.Rect{
		LLx: min(x0, x1),
		LLy: min(y0, y1),
		URx: max(x0, x1),
		URy: max(y0, y1),
	})
}

// FormatString formats s as a PostScript string literal.
// Parentheses and backslashes are escaped, and non-printable characters are
// written as octal escape sequences.
func FormatString(s []byte) string {
	b := &strings.Builder{}
	b.WriteByte('(')
	for _, c := range s {
		switch {
		case c == '(' || c == ')' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < ' ' || c >= 0x7f:
			fmt.Fprintf(b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(')')
	return b.String()
}
