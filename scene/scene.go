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

// Package scene reads document descriptions from YAML files.
//
// A scene lists the pages of a document together with the shapes on
// each page:
//
//	type: eps
//	title: Example
//	builtins: true
//	pages:
//	  - size: [200, 200]
//	    shapes:
//	      - kind: rect
//	        x: 10
//	        y: 10
//	        width: 100
//	        height: 50
//	        fill: [1, 0, 0]
//	        use_procedure: true
//	      - kind: text
//	        text: Hello
//	        x: 10
//	        y: 100
//	        size: 24
//
// Use [Scene.Render] to convert a scene into a PostScript or EPS document.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scene is the contents of a scene file.
type Scene struct {
	// Type is "ps" (the default) or "eps".
	Type string `yaml:"type"`

	Title   string `yaml:"title"`
	Creator string `yaml:"creator"`

	// Strict enables strict procedure checks, see
	// [github.com/codewithkyle/pslib.Builder.Strict].
	Strict bool `yaml:"strict"`

	// Builtins adds the builtin "rect" and "line" procedures to the
	// document prolog.
	Builtins bool `yaml:"builtins"`

	// BoundingBox optionally gives the width and height of the EPS
	// bounding box.
	BoundingBox []int `yaml:"bounding_box"`

	// ImageMaxSize limits the size of embedded images, in pixels.
	ImageMaxSize int `yaml:"image_max_size"`

	Procedures []Procedure `yaml:"procedures"`
	Pages      []Page      `yaml:"pages"`

	// Dir is the directory used to resolve relative image paths.
	// LoadFile sets this to the directory of the scene file.
	Dir string `yaml:"-"`
}

// Procedure is a user-defined prolog procedure.
type Procedure struct {
	Name string `yaml:"name"`
	Body string `yaml:"body"`
}

// Page describes a single page.  The page size is either given by a paper
// name like "A4" or "letter-landscape", or by an explicit [width, height]
// pair.  If neither is set, A4 is used.
type Page struct {
	Paper  string  `yaml:"paper"`
	Size   []int   `yaml:"size"`
	Shapes []Shape `yaml:"shapes"`
}

// Shape describes one shape on a page.  Kind selects the shape type and
// determines which of the other fields are used:
//
//   - "rect": X, Y, Width, Height, Fill, Stroke, StrokeWidth, UseProcedure
//   - "line": X, Y, Length, Stroke, StrokeWidth, UseProcedure
//   - "text": Text, X, Y, Size, Font, Fill
//   - "image": Src, X, Y, Width, Height, Fit
//   - "raw": Text, Uses
//
// Rotate, Scale and Origin apply to all kinds except "raw".
type Shape struct {
	Kind string `yaml:"kind"`

	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Length float64 `yaml:"length"`

	Text string `yaml:"text"`
	Font string `yaml:"font"`

	// Size is the font size of text shapes, 12 if unset.
	Size float64 `yaml:"size"`

	// Fill and Stroke are colors, given as three RGB or four CMYK
	// components in the range [0, 1].
	Fill        []float64 `yaml:"fill"`
	Stroke      []float64 `yaml:"stroke"`
	StrokeWidth float64   `yaml:"stroke_width"`

	Rotate float64   `yaml:"rotate"`
	Scale  []float64 `yaml:"scale"`
	Origin string    `yaml:"origin"`

	UseProcedure bool `yaml:"use_procedure"`

	Src string `yaml:"src"`
	Fit string `yaml:"fit"`

	Uses []string `yaml:"uses"`
}

// Load reads a scene from r.  Unknown fields are reported as errors.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Scene{}
	err := dec.Decode(s)
	if errors.Is(err, io.EOF) {
		return nil, errEmpty
	} else if err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return s, nil
}

// LoadFile reads a scene from the named file.  Relative image paths in
// the scene are interpreted relative to the directory of the file.
func LoadFile(path string) (*Scene, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	defer fd.Close()

	s, err := Load(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

var (
	errEmpty      = errors.New("empty scene")
	errMissingSrc = errors.New("image without src")
)
