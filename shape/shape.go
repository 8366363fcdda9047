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

// Package shape implements the graphical primitives which can be placed on a
// page: rectangles, lines, text, images, and pre-rendered command text.
//
// Shapes are values.  The setter methods return a modified copy, so that
// calls can be chained:
//
//	r := shape.NewRect(0, 0, 100, 100).
//		FillRGB(1, 0, 0).
//		StrokeRGB(2, 0, 0, 0).
//		Rotate(45)
package shape

import (
	"bytes"

	"seehuhn.de/go/geom/rect"

	"github.com/codewithkyle/pslib/graphics"
	"github.com/codewithkyle/pslib/graphics/color"
)

// Shape is implemented by everything which can be drawn on a page.
type Shape interface {
	// Draw writes the PostScript commands for the shape to w.
	// Errors are reported via w.Err.
	Draw(w *graphics.Writer)
}

// The following types implement the Shape interface.
var (
	_ Shape = Rect{}
	_ Shape = Line{}
	_ Shape = Text{}
	_ Shape = Image{}
	_ Shape = Raw{}
)

// Serialize returns the PostScript commands for s.
func Serialize(s Shape) (string, error) {
	buf := &bytes.Buffer{}
	w := graphics.NewWriter(buf)
	s.Draw(w)
	if w.Err != nil {
		return "", w.Err
	}
	return buf.String(), nil
}

// Anchor selects the point of a shape's bounding box which stays fixed
// under rotation and scaling.
type Anchor int

// These are the supported anchor points.
const (
	Center Anchor = iota // default
	BottomLeft
	BottomRight
	TopLeft
	TopRight
	Left  // middle of the left edge
	Right // middle of the right edge
)

func (a Anchor) point(box rect.Rect) (float64, float64) {
	midX := (box.LLx + box.URx) / 2
	midY := (box.LLy + box.URy) / 2
	switch a {
	case BottomLeft:
		return box.LLx, box.LLy
	case BottomRight:
		return box.URx, box.LLy
	case TopLeft:
		return box.LLx, box.URy
	case TopRight:
		return box.URx, box.URy
	case Left:
		return box.LLx, midY
	case Right:
		return box.URx, midY
	default:
		return midX, midY
	}
}

// transform holds the rotation and scaling of a shape.
type transform struct {
	angle    float64
	sx, sy   float64
	doRotate bool
	doScale  bool
	anchor   Anchor
}

func (t *transform) setRotation(angle float64) {
	t.angle = min(max(angle, -360), 360)
	t.doRotate = true
}

func (t *transform) setScale(sx, sy float64) {
	t.sx, t.sy = sx, sy
	t.doScale = true
}

func (t transform) active() bool {
	return t.doRotate || t.doScale
}

// begin saves the graphics state and sets up the transformation for a
// shape with the given bounding box.
func (t transform) begin(w *graphics.Writer, box rect.Rect) {
	if !t.active() {
		return
	}
	ox, oy := t.anchor.point(box)
	w.GSave()
	w.Translate(ox, oy)
	if t.doRotate {
		w.Rotate(t.angle)
	}
	if t.doScale {
		w.Scale(t.sx, t.sy)
	}
	w.Translate(-ox, -oy)
}

// end restores the graphics state saved by begin.
func (t transform) end(w *graphics.Writer) {
	if t.active() {
		w.GRestore()
	}
}

// paint holds the fill and stroke settings of a shape.
// A nil color means "not set".
type paint struct {
	fill        color.Color
	stroke      color.Color
	strokeWidth float64
}

// apply paints the current path.  The fill is painted first, so that the
// outline appears on top.
func (p paint) apply(w *graphics.Writer) {
	doStroke := p.strokeWidth > 0
	if p.fill != nil {
		if doStroke {
			// keep the path for stroking
			w.GSave()
		}
		w.SetColor(p.fill)
		w.Fill()
		if doStroke {
			w.GRestore()
		}
	}
	if doStroke {
		w.SetLineWidth(p.strokeWidth)
		c := p.stroke
		if c == nil {
			c = color.Black
		}
		w.SetColor(c)
		w.Stroke()
	}
}
