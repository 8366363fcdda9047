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
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func serialize(t *testing.T, s Shape) string {
	t.Helper()
	out, err := Serialize(s)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

// operators returns the last token of every line.
func operators(text string) []string {
	var res []string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		res = append(res, fields[len(fields)-1])
	}
	return res
}

func TestRectFill(t *testing.T) {
	out := serialize(t, NewRect(0, 0, 100, 100).FillRGB(1, 0, 0))
	want := `newpath
0 0 moveto
0 100 rlineto
100 0 rlineto
0 -100 rlineto
-100 0 rlineto
closepath
1 0 0 setrgbcolor
fill
`
	if d := cmp.Diff(want, out); d != "" {
		t.Error(d)
	}
}

func TestRectDeltas(t *testing.T) {
	cases := [][4]float64{
		{0, 0, 100, 100},
		{10, 20, 30.5, 0.25},
		{-5, 7, 0, 12},
		{1, 2, 3, 0},
	}
	for _, c := range cases {
		x, y, w, h := c[0], c[1], c[2], c[3]
		out := serialize(t, NewRect(x, y, w, h).FillCMYK(0, 0, 0, 1))

		var deltas [][2]float64
		for _, line := range strings.Split(out, "\n") {
			fields := strings.Fields(line)
			if len(fields) != 3 || fields[2] != "rlineto" {
				continue
			}
			dx, err1 := strconv.ParseFloat(fields[0], 64)
			dy, err2 := strconv.ParseFloat(fields[1], 64)
			if err1 != nil || err2 != nil {
				t.Fatalf("malformed line %q", line)
			}
			deltas = append(deltas, [2]float64{dx, dy})
		}

		want := [][2]float64{{0, h}, {w, 0}, {0, -h}, {-w, 0}}
		if d := cmp.Diff(want, deltas); d != "" {
			t.Errorf("Rect(%v): %s", c, d)
		}
		var sx, sy float64
		for _, d := range deltas {
			sx += d[0]
			sy += d[1]
		}
		if sx != 0 || sy != 0 {
			t.Errorf("Rect(%v): deltas sum to (%g, %g)", c, sx, sy)
		}
	}
}

func TestNoStrokeForZeroWidth(t *testing.T) {
	shapes := []Shape{
		NewRect(0, 0, 10, 10),
		NewRect(0, 0, 10, 10).FillRGB(0, 1, 0),
		NewRect(0, 0, 10, 10).StrokeRGB(0, 1, 0, 0),
		NewRect(0, 0, 10, 10).StrokeCMYK(-3, 1, 0, 0, 0),
		NewLine(0, 0, 10).StrokeRGB(0, 1, 0, 0),
		NewRect(0, 0, 10, 10).FillRGB(1, 1, 0).Rotate(30).UseProcedure(),
	}
	for i, s := range shapes {
		out := serialize(t, s)
		for _, op := range operators(out) {
			if op == "setlinewidth" || op == "stroke" {
				t.Errorf("shape %d: unexpected %q in\n%s", i, op, out)
			}
		}
	}
}

func TestFillBeforeStroke(t *testing.T) {
	out := serialize(t, NewRect(0, 0, 100, 100).
		FillRGB(1, 0, 0).
		StrokeCMYK(2, 0, 1, 0, 0))
	want := []string{
		"newpath", "moveto", "rlineto", "rlineto", "rlineto", "rlineto",
		"closepath",
		"gsave", "setrgbcolor", "fill", "grestore",
		"setlinewidth", "setcmykcolor", "stroke",
	}
	if d := cmp.Diff(want, operators(out)); d != "" {
		t.Error(d)
	}
	if !strings.Contains(out, "2 setlinewidth\n0 1 0 0 setcmykcolor\nstroke\n") {
		t.Errorf("wrong stroke commands:\n%s", out)
	}
}

func TestStrokeDefaultsToBlack(t *testing.T) {
	out := serialize(t, NewRect(0, 0, 1, 1).Stroke(0.5, nil))
	if !strings.HasSuffix(out, "0.5 setlinewidth\n0 0 0 setrgbcolor\nstroke\n") {
		t.Errorf("wrong stroke commands:\n%s", out)
	}
}

func TestTransform(t *testing.T) {
	out := serialize(t, NewRect(10, 20, 30, 40).Rotate(90).Scale(1.5, 1).StrokeRGB(1, 0, 0, 0))
	want := `gsave
25 40 translate
90 rotate
1.5 1 scale
-25 -40 translate
newpath
10 20 moveto
0 40 rlineto
30 0 rlineto
0 -40 rlineto
-30 0 rlineto
closepath
1 setlinewidth
0 0 0 setrgbcolor
stroke
grestore
`
	if d := cmp.Diff(want, out); d != "" {
		t.Error(d)
	}
}

func TestAnchor(t *testing.T) {
	cases := []struct {
		a    Anchor
		want string
	}{
		{Center, "5 10 translate"},
		{BottomLeft, "0 0 translate"},
		{BottomRight, "10 0 translate"},
		{TopLeft, "0 20 translate"},
		{TopRight, "10 20 translate"},
		{Left, "0 10 translate"},
		{Right, "10 10 translate"},
	}
	for _, c := range cases {
		out := serialize(t, NewRect(0, 0, 10, 20).Origin(c.a).Rotate(10))
		lines := strings.Split(out, "\n")
		if lines[1] != c.want {
			t.Errorf("anchor %d: got %q, want %q", c.a, lines[1], c.want)
		}
	}
}

func TestRotationClamped(t *testing.T) {
	out := serialize(t, NewRect(0, 0, 10, 10).Rotate(1000))
	if !strings.Contains(out, "\n360 rotate\n") {
		t.Errorf("rotation not clamped:\n%s", out)
	}
}

func TestSettersDoNotAlias(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	red := base.FillRGB(1, 0, 0)
	_ = red.Rotate(45)

	if out := serialize(t, base); strings.Contains(out, "fill") {
		t.Error("setter modified the original shape")
	}
	if out := serialize(t, red); strings.Contains(out, "rotate") {
		t.Error("setter modified the original shape")
	}
}

func TestRectProcedure(t *testing.T) {
	out := serialize(t, NewRect(5, 6, 10, 20).UseProcedure().FillRGB(0, 0, 1))
	want := "-10 0 0 -20 10 0 0 20 5 6 rect\n0 0 1 setrgbcolor\nfill\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestOneOperatorPerLine(t *testing.T) {
	shapes := []Shape{
		NewRect(0, 0, 10, 10).FillRGB(1, 0, 0).StrokeRGB(1, 0, 0, 0).Rotate(10).Scale(2, 2),
		NewLine(0, 0, 10).Rotate(45),
		NewText("Hello", 0, 0, 12).FillCMYK(0, 0, 0, 1).Rotate(5),
		NewImage("image1", 0, 0, 100, 50).Fit(Cover, 10, 10),
	}
	ops := map[string]bool{
		"newpath": true, "moveto": true, "rlineto": true, "closepath": true,
		"fill": true, "stroke": true, "clip": true, "setlinewidth": true,
		"setrgbcolor": true, "setcmykcolor": true, "gsave": true,
		"grestore": true, "translate": true, "rotate": true, "scale": true,
		"findfont": true, "scalefont": true, "setfont": true, "show": true,
		"image1": true,
	}
	for i, s := range shapes {
		out := serialize(t, s)
		for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
			fields := strings.Fields(line)
			for j, f := range fields {
				if ops[f] != (j == len(fields)-1) {
					t.Errorf("shape %d: malformed line %q", i, line)
				}
			}
		}
	}
}
