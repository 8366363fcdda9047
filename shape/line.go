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

// Line is a horizontal line segment.  Use [Line.Rotate] for other
// directions.
type Line struct {
	x, y, length float64

	strokeWidth float64
	stroke      color.Color
	transform

	useProc bool
}

// NewLine returns a line from (x, y) to (x+length, y), stroked in black
// with width 1.  Negative lengths are replaced by zero.
func NewLine(x, y, length float64) Line {
	return Line{
		x:           x,
		y:           y,
		length:      max(length, 0),
		strokeWidth: 1,
	}
}

// Box returns the extent of the line, before any transformation is applied.
func (l Line) Box() rect.Rect {
	return rect.Rect{LLx: l.x, LLy: l.y, URx: l.x + l.length, URy: l.y}
}

// Stroke sets the line width and color.
// A width of zero makes the line invisible.
func (l Line) Stroke(width float64, c color.Color) Line {
	l.strokeWidth = max(width, 0)
	l.stroke = c
	return l
}

// StrokeRGB sets the line width and an RGB color.
func (l Line) StrokeRGB(width, r, g, b float64) Line {
	return l.Stroke(width, color.DeviceRGB(r, g, b))
}

// StrokeCMYK sets the line width and a CMYK color.
func (l Line) StrokeCMYK(width, c, m, y, k float64) Line {
	return l.Stroke(width, color.DeviceCMYK(c, m, y, k))
}

// Rotate rotates the line counterclockwise around its anchor point.
// The angle is given in degrees and is clamped to [-360, 360].
func (l Line) Rotate(angle float64) Line {
	l.setRotation(angle)
	return l
}

// Scale scales the line, keeping the anchor point fixed.
func (l Line) Scale(sx, sy float64) Line {
	l.setScale(sx, sy)
	return l
}

// Origin sets the anchor point for rotation and scaling.
// [Left], [Center] and [Right] are the natural choices for lines.
func (l Line) Origin(a Anchor) Line {
	l.anchor = a
	return l
}

// UseProcedure makes the line invoke the builtin [procset.Line]
// procedure instead of spelling out the path.
func (l Line) UseProcedure() Line {
	l.useProc = true
	return l
}

// Draw implements the [Shape] interface.
func (l Line) Draw(w *graphics.Writer) {
	l.begin(w, l.Box())

	if l.useProc {
		w.Call(procset.Line, l.length, 0, l.x, l.y)
		w.TrackPoint(l.x, l.y)
		w.TrackPoint(l.x+l.length, l.y)
	} else {
		w.NewPath()
		w.MoveTo(l.x, l.y)
		w.RLineTo(l.length, 0)
	}
	p := paint{stroke: l.stroke, strokeWidth: l.strokeWidth}
	p.apply(w)

	l.end(w)
}
