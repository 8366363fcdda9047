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

package scene

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/codewithkyle/pslib"
	"github.com/codewithkyle/pslib/graphics"
	"github.com/codewithkyle/pslib/graphics/color"
	"github.com/codewithkyle/pslib/image"
	"github.com/codewithkyle/pslib/page"
	"github.com/codewithkyle/pslib/procset"
	"github.com/codewithkyle/pslib/shape"
)

// Render writes the scene as a PostScript or EPS document to w.
// Image files are read and embedded into the document prolog.
func (s *Scene) Render(w io.Writer) error {
	doc, err := s.render(w)
	if err != nil {
		return err
	}
	return doc.Close()
}

// RenderBytes renders the scene into memory.
func (s *Scene) RenderBytes() ([]byte, error) {
	doc, err := s.render(nil)
	if err != nil {
		return nil, err
	}
	err = doc.Close()
	if err != nil {
		return nil, err
	}
	return doc.Bytes(), nil
}

func (s *Scene) render(w io.Writer) (*pslib.Document, error) {
	tp := pslib.PS
	if s.Type != "" {
		var err error
		tp, err = pslib.ParseDocumentType(s.Type)
		if err != nil {
			return nil, err
		}
	}

	// Images are registered in page order, so that procedure names do not
	// depend on map iteration.
	images := image.NewRegistry()
	procNames := make(map[shapeID]string)
	for i, p := range s.Pages {
		for j, sh := range p.Shapes {
			if sh.Kind == "image" {
				if sh.Src == "" {
					return nil, errMissingSrc
				}
				procNames[shapeID{i, j}] = images.Add(s.resolve(sh.Src))
			}
		}
	}
	r := &renderer{scene: s, images: images, procNames: procNames}
	imageProcs := procset.NewRegistry()
	err := images.Load(imageProcs, &image.Options{MaxSize: s.ImageMaxSize})
	if err != nil {
		return nil, err
	}

	custom := procset.NewRegistry()
	for _, p := range s.Procedures {
		if !graphics.IsValidName(p.Name) {
			return nil, fmt.Errorf("invalid procedure name %q", p.Name)
		}
		custom.Add(&procset.Procedure{Name: p.Name, Body: p.Body})
	}

	b := pslib.NewBuilder().
		DocumentType(tp).
		Writer(w).
		Title(s.Title).
		Creator(s.Creator).
		Strict(s.Strict)
	if s.Builtins {
		b.LoadProcedures(procset.WithBuiltins())
	}
	b.LoadProcedures(custom).LoadProcedures(imageProcs)
	switch len(s.BoundingBox) {
	case 0:
		// pass
	case 2:
		b.BoundingBox(s.BoundingBox[0], s.BoundingBox[1])
	default:
		return nil, fmt.Errorf("bounding_box needs 2 values, got %d", len(s.BoundingBox))
	}

	doc, err := b.Build()
	if err != nil {
		return nil, err
	}

	for i, p := range s.Pages {
		pg, err := r.page(i, p)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		err = doc.Add(pg)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
	}
	return doc, nil
}

func (s *Scene) resolve(path string) string {
	if s.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Dir, path)
}

// shapeID identifies a shape by page index and shape index.
type shapeID struct {
	page, shape int
}

// renderer holds the state needed to convert pages.
type renderer struct {
	scene     *Scene
	images    *image.Registry
	procNames map[shapeID]string
}

// page converts the description of a page into a page.
func (r *renderer) page(idx int, p Page) (*page.Page, error) {
	size := page.A4
	switch {
	case len(p.Size) == 2:
		size = page.Size{Width: p.Size[0], Height: p.Size[1]}
	case len(p.Size) != 0:
		return nil, fmt.Errorf("size needs 2 values, got %d", len(p.Size))
	case p.Paper != "":
		var ok bool
		size, ok = page.LookupSize(p.Paper)
		if !ok {
			return nil, fmt.Errorf("unknown paper size %q", p.Paper)
		}
	}

	res := page.FromSize(size)
	for j, desc := range p.Shapes {
		sh, err := r.shape(shapeID{idx, j}, desc)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", j+1, err)
		}
		res.Add(sh)
	}
	return res, nil
}

// shape converts the description of a shape into a shape.
func (r *renderer) shape(id shapeID, d Shape) (shape.Shape, error) {
	anchor, err := parseAnchor(d.Origin)
	if err != nil {
		return nil, err
	}
	sx, sy := 1.0, 1.0
	switch len(d.Scale) {
	case 0:
		// pass
	case 1:
		sx, sy = d.Scale[0], d.Scale[0]
	case 2:
		sx, sy = d.Scale[0], d.Scale[1]
	default:
		return nil, fmt.Errorf("scale needs 1 or 2 values, got %d", len(d.Scale))
	}
	fill, err := parseColor(d.Fill)
	if err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	stroke, err := parseColor(d.Stroke)
	if err != nil {
		return nil, fmt.Errorf("stroke: %w", err)
	}

	switch d.Kind {
	case "rect":
		rect := shape.NewRect(d.X, d.Y, d.Width, d.Height)
		if fill != nil {
			rect = rect.Fill(fill)
		}
		if d.StrokeWidth > 0 || stroke != nil {
			rect = rect.Stroke(strokeWidth(d), stroke)
		}
		if d.UseProcedure {
			rect = rect.UseProcedure()
		}
		return transform(rect, d, sx, sy, anchor), nil

	case "line":
		l := shape.NewLine(d.X, d.Y, d.Length)
		if d.StrokeWidth > 0 || stroke != nil {
			l = l.Stroke(strokeWidth(d), stroke)
		}
		if d.UseProcedure {
			l = l.UseProcedure()
		}
		return transform(l, d, sx, sy, anchor), nil

	case "text":
		size := d.Size
		if size == 0 {
			size = defaultFontSize
		}
		t := shape.NewText(d.Text, d.X, d.Y, size)
		if d.Font != "" {
			t = t.Font(d.Font)
		}
		if fill != nil {
			t = t.Fill(fill)
		}
		return transform(t, d, sx, sy, anchor), nil

	case "image":
		fit, err := parseFit(d.Fit)
		if err != nil {
			return nil, err
		}
		name := r.procNames[id]
		im, ok := r.images.Get(r.scene.resolve(d.Src))
		if !ok || name == "" {
			return nil, fmt.Errorf("image %q was not loaded", d.Src)
		}
		img := shape.NewImage(name, d.X, d.Y, d.Width, d.Height).
			Fit(fit, im.Width, im.Height)
		return transform(img, d, sx, sy, anchor), nil

	case "raw":
		return shape.NewRaw(d.Text, d.Uses...), nil

	default:
		return nil, fmt.Errorf("unknown shape kind %q", d.Kind)
	}
}

// defaultFontSize is used for text shapes without an explicit size.
const defaultFontSize = 12

type transformable[T any] interface {
	Rotate(angle float64) T
	Scale(sx, sy float64) T
	Origin(a shape.Anchor) T
}

// transform applies the rotation and scaling from d.  Shapes without
// rotation or scaling are drawn without a coordinate transformation.
func transform[T transformable[T]](s T, d Shape, sx, sy float64, a shape.Anchor) T {
	if d.Rotate != 0 {
		s = s.Rotate(d.Rotate)
	}
	if len(d.Scale) > 0 {
		s = s.Scale(sx, sy)
	}
	return s.Origin(a)
}

// strokeWidth returns the line width for an outline.  If only a stroke
// color is given, the width defaults to one point.
func strokeWidth(d Shape) float64 {
	if d.StrokeWidth > 0 {
		return d.StrokeWidth
	}
	return 1
}

func parseColor(v []float64) (color.Color, error) {
	switch len(v) {
	case 0:
		return nil, nil
	case 3:
		return color.DeviceRGB(v[0], v[1], v[2]), nil
	case 4:
		return color.DeviceCMYK(v[0], v[1], v[2], v[3]), nil
	default:
		return nil, fmt.Errorf("colors need 3 (RGB) or 4 (CMYK) values, got %d", len(v))
	}
}

var anchorNames = map[string]shape.Anchor{
	"":             shape.Center,
	"center":       shape.Center,
	"bottom-left":  shape.BottomLeft,
	"bottom-right": shape.BottomRight,
	"top-left":     shape.TopLeft,
	"top-right":    shape.TopRight,
	"left":         shape.Left,
	"right":        shape.Right,
}

func parseAnchor(s string) (shape.Anchor, error) {
	a, ok := anchorNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown origin %q", s)
	}
	return a, nil
}

var fitNames = map[string]shape.Fit{
	"":                   shape.Stretch,
	"stretch":            shape.Stretch,
	"contain":            shape.Contain,
	"cover":              shape.Cover,
	"stretch-horizontal": shape.StretchHorizontal,
	"stretch-vertical":   shape.StretchVertical,
}

func parseFit(s string) (shape.Fit, error) {
	f, ok := fitNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown fit %q", s)
	}
	return f, nil
}
