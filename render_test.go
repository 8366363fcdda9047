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

package pslib_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/codewithkyle/pslib"
	"github.com/codewithkyle/pslib/internal/ghostscript"
	pimage "github.com/codewithkyle/pslib/image"
	"github.com/codewithkyle/pslib/page"
	"github.com/codewithkyle/pslib/procset"
	"github.com/codewithkyle/pslib/shape"
)

// near reports whether c is close to the given 8-bit RGB value.
func near(c color.Color, r, g, b uint8) bool {
	cr, cg, cb, _ := c.RGBA()
	d := func(x uint32, y uint8) bool {
		diff := int(x>>8) - int(y)
		return diff > -16 && diff < 16
	}
	return d(cr, r) && d(cg, g) && d(cb, b)
}

func TestRenderPS(t *testing.T) {
	doc, err := pslib.NewBuilder().LoadProcedures(procset.WithBuiltins()).Build()
	if err != nil {
		t.Fatal(err)
	}
	p := page.New(400, 400)
	p.Add(shape.NewRect(0, 0, 100, 100).FillRGB(1, 0, 0))
	p.Add(shape.NewRect(200, 200, 100, 100).UseProcedure().FillRGB(0, 0, 1))
	err = doc.Add(p)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Close()
	if err != nil {
		t.Fatal(err)
	}

	img := ghostscript.Render(t, doc.Bytes(), pslib.PS)
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 400 {
		t.Fatalf("wrong image size %dx%d", b.Dx(), b.Dy())
	}
	// image rows run from top to bottom
	if c := img.At(50, 349); !near(c, 255, 0, 0) {
		t.Errorf("red square: got %v", c)
	}
	if c := img.At(250, 149); !near(c, 0, 0, 255) {
		t.Errorf("blue square: got %v", c)
	}
	if c := img.At(150, 250); !near(c, 255, 255, 255) {
		t.Errorf("background: got %v", c)
	}
}

func TestRenderImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}
	name := filepath.Join(t.TempDir(), "green.png")
	fd, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	err = png.Encode(fd, src)
	fd.Close()
	if err != nil {
		t.Fatal(err)
	}

	images := pimage.NewRegistry()
	proc := images.Add(name)
	procs := procset.NewRegistry()
	err = images.Load(procs, nil)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := pslib.NewBuilder().
		DocumentType(pslib.EPS).
		BoundingBox(100, 100).
		LoadProcedures(procs).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	p := page.New(100, 100)
	p.Add(shape.NewImage(proc, 0, 0, 100, 100))
	err = doc.Add(p)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Close()
	if err != nil {
		t.Fatal(err)
	}

	img := ghostscript.Render(t, doc.Bytes(), pslib.EPS)
	if c := img.At(50, 50); !near(c, 0, 255, 0) {
		t.Errorf("image: got %v", c)
	}
}
