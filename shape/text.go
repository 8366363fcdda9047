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

package shape

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/geom/rect"

	"github.com/codewithkyle/pslib/graphics"
	"github.com/codewithkyle/pslib/graphics/color"
)

// DefaultFont is the font used by [Text] unless [Text.Font] is called.
const DefaultFont = "Helvetica"

// Text is a single line of text, set in one of the fonts available to the
// PostScript interpreter.  No line breaking or alignment is performed.
type Text struct {
	text       string
	x, y, size float64
	font       string

	fill color.Color
	transform
}

// NewText returns a text which starts at (x, y) and uses the given font
// size.  The text is painted in black, using [DefaultFont].
func NewText(text string, x, y, size float64) Text {
	return Text{
		text: text,
		x:    x,
		y:    y,
		size: size,
		font: DefaultFont,
	}
}

// Box returns an approximation of the area covered by the text.  Since font
// metrics are not available, the box has zero width.
func (t Text) Box() rect.Rect {
	return rect.Rect{LLx: t.x, LLy: t.y, URx: t.x, URy: t.y + t.size}
}

// Font selects the font, by PostScript name.
func (t Text) Font(name string) Text {
	t.font = name
	return t
}

// Fill sets the text color.
func (t Text) Fill(c color.Color) Text {
	t.fill = c
	return t
}

// FillRGB sets an RGB text color.
func (t Text) FillRGB(r, g, b float64) Text {
	return t.Fill(color.DeviceRGB(r, g, b))
}

// FillCMYK sets a CMYK text color.
func (t Text) FillCMYK(c, m, y, k float64) Text {
	return t.Fill(color.DeviceCMYK(c, m, y, k))
}

// Rotate rotates the text counterclockwise around its anchor point.
// The angle is given in degrees and is clamped to [-360, 360].
func (t Text) Rotate(angle float64) Text {
	t.setRotation(angle)
	return t
}

// Scale scales the text, keeping the anchor point fixed.
func (t Text) Scale(sx, sy float64) Text {
	t.setScale(sx, sy)
	return t
}

// Origin sets the anchor point for rotation and scaling.
func (t Text) Origin(a Anchor) Text {
	t.anchor = a
	return t
}

// Draw implements the [Shape] interface.
func (t Text) Draw(w *graphics.Writer) {
	t.begin(w, t.Box())

	w.SetFont(t.font, t.size)
	w.MoveTo(t.x, t.y)
	c := t.fill
	if c == nil {
		c = color.Black
	}
	w.SetColor(c)
	w.Show(EncodeLatin1(t.text))

	t.end(w)
}

// EncodeLatin1 converts s to ISO 8859-1, the encoding used by the standard
// PostScript fonts.  Characters which cannot be represented are replaced
// by '?'.
func EncodeLatin1(s string) []byte {
	res := make([]byte, 0, len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok || r == utf8.RuneError {
			b = '?'
		}
		res = append(res, b)
	}
	return res
}
