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
)

// Fit describes how an image is placed inside its box.
type Fit int

// These are the supported fit modes.
const (
	// Stretch fills the box, ignoring the aspect ratio of the image.
	Stretch Fit = iota

	// Contain scales the image to the largest size which fits into the box,
	// keeping the aspect ratio.  The image is centered in the box.
	Contain

	// Cover scales the image to the smallest size which covers the box,
	// keeping the aspect ratio.  Parts outside the box are clipped.
	Cover

	// StretchHorizontal uses the full box width and keeps the aspect ratio.
	StretchHorizontal

	// StretchVertical uses the full box height and keeps the aspect ratio.
	StretchVertical
)

// Image places an image, defined by a prolog procedure, on the page.  The
// procedure must paint the image into the unit square, as the procedures
// generated by the image package do.
type Image struct {
	proc                string
	x, y, width, height float64

	fit        Fit
	srcW, srcH int
	transform
}

// NewImage returns an image which invokes the procedure proc to paint
// the image into the box with lower left corner (x, y).
func NewImage(proc string, x, y, width, height float64) Image {
	return Image{
		proc:   proc,
		x:      x,
		y:      y,
		width:  max(width, 0),
		height: max(height, 0),
	}
}

// Box returns the box the image is placed in, before any transformation is
// applied.
func (im Image) Box() rect.Rect {
	return rect.Rect{LLx: im.x, LLy: im.y, URx: im.x + im.width, URy: im.y + im.height}
}

// Fit sets the fit mode.  The size of the source image, in pixels, is
// needed for all modes which keep the aspect ratio.  If the size is not
// known, the image is stretched.
func (im Image) Fit(f Fit, srcWidth, srcHeight int) Image {
	im.fit = f
	im.srcW, im.srcH = srcWidth, srcHeight
	return im
}

// Rotate rotates the image counterclockwise around its anchor point.
// The angle is given in degrees and is clamped to [-360, 360].
func (im Image) Rotate(angle float64) Image {
	im.setRotation(angle)
	return im
}

// Scale scales the image, keeping the anchor point fixed.
func (im Image) Scale(sx, sy float64) Image {
	im.setScale(sx, sy)
	return im
}

// Origin sets the anchor point for rotation and scaling.
func (im Image) Origin(a Anchor) Image {
	im.anchor = a
	return im
}

// placement returns the area covered by the unit square of the image.
func (im Image) placement() rect.Rect {
	box := im.Box()
	if im.fit == Stretch || im.srcW <= 0 || im.srcH <= 0 || im.width == 0 || im.height == 0 {
		return box
	}

	aspect := float64(im.srcW) / float64(im.srcH)
	wider := im.width/im.height > aspect // box is wider than the image

	var pw, ph float64
	switch im.fit {
	case Contain:
		if wider {
			ph = im.height
			pw = ph * aspect
		} else {
			pw = im.width
			ph = pw / aspect
		}
	case Cover:
		if wider {
			pw = im.width
			ph = pw / aspect
		} else {
			ph = im.height
			pw = ph * aspect
		}
	case StretchHorizontal:
		pw = im.width
		ph = pw / aspect
	case StretchVertical:
		ph = im.height
		pw = ph * aspect
	default:
		return box
	}

	llx := im.x + (im.width-pw)/2
	lly := im.y + (im.height-ph)/2
	return rect.Rect{LLx: llx, LLy: lly, URx: llx + pw, URy: lly + ph}
}

// Draw implements the [Shape] interface.
func (im Image) Draw(w *graphics.Writer) {
	im.begin(w, im.Box())

	w.GSave()
	if im.fit == Cover {
		w.NewPath()
		w.MoveTo(im.x, im.y)
		w.RLineTo(0, im.height)
		w.RLineTo(im.width, 0)
		w.RLineTo(0, -im.height)
		w.RLineTo(-im.width, 0)
		w.ClosePath()
		w.Clip()
		w.NewPath()
	}
	p := im.placement()
	w.Translate(p.LLx, p.LLy)
	w.Scale(p.URx-p.LLx, p.URy-p.LLy)
	w.Call(im.proc)
	if im.fit == Cover {
		w.GRestore()
		w.TrackPainted(im.x, im.y, im.x+im.width, im.y+im.height)
	} else {
		w.TrackPainted(0, 0, 1, 1)
		w.GRestore()
	}

	im.end(w)
}
