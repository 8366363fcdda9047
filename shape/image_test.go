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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

func TestImagePlacement(t *testing.T) {
	// a 200x100 box, and an image with aspect ratio 1
	cases := []struct {
		fit  Fit
		want rect.Rect
	}{
		{Stretch, rect.Rect{LLx: 0, LLy: 0, URx: 200, URy: 100}},
		{Contain, rect.Rect{LLx: 50, LLy: 0, URx: 150, URy: 100}},
		{Cover, rect.Rect{LLx: 0, LLy: -50, URx: 200, URy: 150}},
		{StretchHorizontal, rect.Rect{LLx: 0, LLy: -50, URx: 200, URy: 150}},
		{StretchVertical, rect.Rect{LLx: 50, LLy: 0, URx: 150, URy: 100}},
	}
	for _, c := range cases {
		im := NewImage("image1", 0, 0, 200, 100).Fit(c.fit, 64, 64)
		if d := cmp.Diff(c.want, im.placement()); d != "" {
			t.Errorf("fit %d: %s", c.fit, d)
		}
	}

	// unknown source size
	im := NewImage("image1", 0, 0, 200, 100).Fit(Contain, 0, 0)
	if d := cmp.Diff(im.Box(), im.placement()); d != "" {
		t.Error(d)
	}
}

func TestImage(t *testing.T) {
	out := serialize(t, NewImage("image3", 10, 20, 100, 50))
	want := `gsave
10 20 translate
100 50 scale
image3
grestore
`
	if d := cmp.Diff(want, out); d != "" {
		t.Error(d)
	}
}

func TestImageCover(t *testing.T) {
	out := serialize(t, NewImage("image1", 0, 0, 200, 100).Fit(Cover, 10, 10))
	if !strings.Contains(out, "closepath\nclip\nnewpath\n0 -50 translate\n200 200 scale\nimage1\n") {
		t.Errorf("wrong cover output:\n%s", out)
	}
}

func TestRaw(t *testing.T) {
	out := serialize(t, NewRaw("1 2 3 myproc", "myproc"))
	if out != "1 2 3 myproc\n" {
		t.Errorf("got %q", out)
	}
}
