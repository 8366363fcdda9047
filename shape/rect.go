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
	"seehuhn.de/go/geom/rect"

	"github.com/codewithkyle/pslib/graphics"
	"github.com/codewithkyle/pslib/graphics/color"
	"github.com/codewithkyle/pslib/procset"
)

// Rect is an axis-parallel rectangle.
type Rect struct {
	x, y, width, height float64

	paint
	transform

	useProc bool
}

// NewRect returns a rectangle with lower left corner (x, y).
// Negative widths and heights are replaced by zero.
// The new rectangle is neither filled nor stroked.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		x:      x,
		y:      y,
		width:  max(width, 0),
		height: max(height, 0),
	}
}

// Box returns the rectangle, before any transformation is applied.
func (s Rect) Box() rect.Rect {
	return rect.Rect{LLx: s.x, LLy: s.y, URx: s.x + s.width, URy: s.y + s.height}
}

// Fill sets the fill color.
func (s Rect) Fill(c color.Color) Rect {
	s.fill = c
	return s
}

// FillRGB sets an RGB fill color.
func (s Rect) FillRGB(r, g, b float64) Rect {
	return s.Fill(color.DeviceRGB(r, g, b))
}

// FillCMYK sets a CMYK fill color.
func (s Rect) FillCMYK(c, m, y, k float64) Rect {
	return s.Fill(color.DeviceCMYK(c, m, y, k))
}

// Stroke sets the line width and color for the outline.
// A width of zero disables stroking.
func (s Rect) Stroke(width float64, c color.Color) Rect {
	s.strokeWidth = max(width, 0)
	s.stroke = c
	return s
}

// StrokeRGB sets the line width and an RGB color for the outline.
func (s Rect) StrokeRGB(width, r, g, b float64) Rect {
	return s.Stroke(width, color.DeviceRGB(r, g, b))
}

// StrokeCMYK sets the line width and a CMYK color for the outline.
func (s Rect) StrokeCMYK(width, c, m, y, k float64) Rect {
	return s.Stroke(width, color.DeviceCMYK(c, m, y, k))
}

// Rotate rotates the rectangle counterclockwise around its anchor point.
// The angle is given in degrees and is clamped to [-360, 360].
func (s Rect) Rotate(angle float64) Rect {
	s.setRotation(angle)
	return s
}

// Scale scales the rectangle, keeping the anchor point fixed.
func (s Rect) Scale(sx, sy float64) Rect {
	s.setScale(sx, sy)
	return s
}

// Origin sets the anchor point for rotation and scaling.
func (s Rect) Origin(a Anchor) Rect {
	s.anchor = a
	return s
}

// UseProcedure makes the rectangle invoke the builtin [procset.Rect]
// procedure instead of spelling out the path.  Documents containing such
// rectangles must load the builtin procedures.
func (s Rect) UseProcedure() Rect {
	s.useProc = true
	return s
}

// Draw implements the [Shape] interface.
func (s Rect) Draw(w *graphics.Writer) {
	s.begin(w, s.Box())

	if s.useProc {
		w.Call(procset.Rect,
			-s.width, 0, 0, -s.height, s.width, 0, 0, s.height, s.x, s.y)
		w.TrackPoint(s.x, s.y)
		w.TrackPoint(s.x+s.width, s.y+s.height)
	} else {
		w.NewPath()
		w.MoveTo(s.x, s.y)
		w.RLineTo(0, s.height)
		w.RLineTo(s.width, 0)
		w.RLineTo(0, -s.height)
		w.RLineTo(-s.width, 0)
		w.ClosePath()
	}
	s.apply(w)

	s.end(w)
}
