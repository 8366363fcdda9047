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

package image

import (
	"bytes"
	"encoding/ascii85"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codewithkyle/pslib/procset"
)

// rows extracts and decodes the image data from a procedure body.
func rows(t *testing.T, body string) [][]byte {
	t.Helper()
	var res [][]byte
	for {
		start := strings.Index(body, "<~")
		if start < 0 {
			break
		}
		end := strings.Index(body, "~>")
		enc := strings.Join(strings.Fields(body[start+2:end]), "")
		dst := make([]byte, 4*len(enc)+4)
		n, _, err := ascii85.Decode(dst, []byte(enc), true)
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, dst[:n])
		body = body[end+2:]
	}
	return res
}

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})
	img.Set(0, 1, color.RGBA{G: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	p, err := Encode("image7", img, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "image7" {
		t.Errorf("wrong name %q", p.Name)
	}

	want := [][]byte{
		{255, 0, 0, 0, 0, 255},
		{0, 255, 0, 1, 2, 3},
	}
	if d := cmp.Diff(want, rows(t, p.Body)); d != "" {
		t.Error(d)
	}

	for _, line := range []string{
		"/image7rows [\n",
		"/image7 {\n",
		"/image7row 0 def\n",
		"2 2 8 [2 0 0 -2 0 2]\n",
		"{ image7rows image7row get /image7row image7row 1 add def }\n",
		"false 3 colorimage\n",
	} {
		if !strings.Contains(p.Body, line) {
			t.Errorf("missing %q in\n%s", line, p.Body)
		}
	}
}

func TestTransparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	p, err := Encode("img", img, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]byte{{10, 20, 30, 255, 255, 255}}
	if d := cmp.Diff(want, rows(t, p.Body)); d != "" {
		t.Error(d)
	}

	p, err = Encode("img", img, &Options{Background: color.Black})
	if err != nil {
		t.Fatal(err)
	}
	want = [][]byte{{10, 20, 30, 0, 0, 0}}
	if d := cmp.Diff(want, rows(t, p.Body)); d != "" {
		t.Error(d)
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode("bad name", image.NewRGBA(image.Rect(0, 0, 1, 1)), nil); err == nil {
		t.Error("invalid name accepted")
	}
	if _, err := Encode("empty", image.NewRGBA(image.Rectangle{}), nil); err == nil {
		t.Error("empty image accepted")
	}
}

func TestScaledSize(t *testing.T) {
	cases := []struct {
		w, h, max   int
		wantW, wantH int
	}{
		{100, 50, 0, 100, 50},
		{100, 50, 200, 100, 50},
		{100, 50, 10, 10, 5},
		{50, 100, 10, 5, 10},
		{1000, 1, 10, 10, 1},
	}
	for _, c := range cases {
		w, h := scaledSize(c.w, c.h, c.max)
		if w != c.wantW || h != c.wantH {
			t.Errorf("scaledSize(%d, %d, %d) = %d, %d", c.w, c.h, c.max, w, h)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if got := r.Add("a.png"); got != "image1" {
		t.Errorf("first image: %q", got)
	}
	if got := r.Add("./b.png"); got != "image2" {
		t.Errorf("second image: %q", got)
	}
	if got := r.Add("a.png"); got != "image3" {
		t.Errorf("repeated image: %q", got)
	}

	id, ok := r.ProcedureID("./a.png")
	if !ok || id != "image3" {
		t.Errorf("ProcedureID = %q, %t", id, ok)
	}
	if _, ok := r.ProcedureID("c.png"); ok {
		t.Error("unknown image found")
	}

	if d := cmp.Diff([]string{"a.png", "b.png"}, r.Sources()); d != "" {
		t.Error(d)
	}
	if r.Len() != 3 || len(r.List()) != 3 {
		t.Errorf("Len() = %d", r.Len())
	}
}

func writePNG(t *testing.T, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	big := writePNG(t, "big.png", 40, 20)
	small := writePNG(t, "small.png", 3, 3)

	r := NewRegistry()
	r.Add(big)
	r.Add(small)
	r.Add(big)

	procs := procset.WithBuiltins()
	err := r.Load(procs, &Options{MaxSize: 8})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"rect", "line", "image1", "image2", "image3"}
	if d := cmp.Diff(want, procs.Names()); d != "" {
		t.Error(d)
	}

	im, _ := r.Get(big)
	if im.Width != 8 || im.Height != 4 {
		t.Errorf("big image: %dx%d", im.Width, im.Height)
	}
	im, _ = r.Get(small)
	if im.Width != 3 || im.Height != 3 {
		t.Errorf("small image: %dx%d", im.Width, im.Height)
	}

	p, _ := procs.Get("image2")
	if n := len(rows(t, p.Body)); n != 3 {
		t.Errorf("image2 has %d rows", n)
	}
}

func TestLoadErrors(t *testing.T) {
	r := NewRegistry()
	r.Add(filepath.Join(t.TempDir(), "missing.png"))
	err := r.Load(procset.NewRegistry(), nil)
	var decErr *DecodeError
	if !errors.As(err, &decErr) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	r = NewRegistry()
	r.Add(bad)
	err = r.Load(procset.NewRegistry(), nil)
	if !errors.As(err, &decErr) || decErr.Path != bad {
		t.Errorf("bad file: got %v", err)
	}
}

func TestZeroRegistry(t *testing.T) {
	var r Registry
	if got := r.Sources(); len(got) != 0 {
		t.Errorf("empty registry has sources %v", got)
	}
	if got := r.Add("x.png"); got != "image1" {
		t.Errorf("Add = %q", got)
	}
	if id, ok := r.ProcedureID("x.png"); !ok || id != "image1" {
		t.Errorf("ProcedureID = %q, %t", id, ok)
	}
	if d := cmp.Diff([]string{"x.png"}, r.Sources()); d != "" {
		t.Error(d)
	}
}

func TestEncodeValidates(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 3))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	p, err := Encode("image1", img, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := procset.Validate(p); err != nil {
		t.Error(err)
	}
}
