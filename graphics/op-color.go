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

	"github.com/codewithkyle/pslib/graphics/color"
)

// SetColor sets the current color, used for both stroking and filling.
//
// This implements the PostScript operators "setrgbcolor" and
// "setcmykcolor".
func (w *Writer) SetColor(c color.Color) {
	if w.Err != nil {
		return
	}
	if c == nil {
		w.Err = errors.New("SetColor: missing color")
		return
	}
	op := c.ColorSpace().Operator()
	if op == "" {
		w.Err = errors.New("SetColor: unsupported color space " + c.ColorSpace().String())
		return
	}

	values := c.Values()
	fields := make([]any, 0, len(values)+1)
	for _, x := range values {
		fields = append(fields, w.num(x))
	}
	fields = append(fields, op)
	w.emit(fields...)
}
