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

package graphics

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Writer writes a PostScript command stream.
type Writer struct {
	Content io.Writer
	Err     error

	// CTM is the current transformation matrix, relative to the default
	// coordinate system of the page.
	CTM matrix.Matrix

	// LineWidth is the current line width, in user space units.
	LineWidth float64

	// FontSize is the size of the most recently selected font.
	FontSize float64

	stack []savedState

	path    pathState
	extent  rect.Rect
	painted bool

	procs    []string
	procSeen map[string]bool
}

type savedState struct {
	ctm       matrix.Matrix
	lineWidth float64
	fontSize  float64
	path      pathState
}

// pathState describes the current path, in page coordinates.
type pathState struct {
	box        rect.Rect
	nonEmpty   bool
	curX, curY float64 // current point, in user space
	hasCur     bool
}

// NewWriter allocates a new Writer object.
// The initial graphics state corresponds to the PostScript defaults.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:   out,
		CTM:       matrix.Identity,
		LineWidth: 1,
		procSeen:  make(map[string]bool),
	}
}

// Depth returns the number of graphics states saved by [Writer.GSave] which
// have not yet been restored.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// Procedures returns the names of all procedures invoked via [Writer.Call],
// in order of first use.
func (w *Writer) Procedures() []string {
	res := make([]string, len(w.procs))
	copy(res, w.procs)
	return res
}

// Extent returns the area of the page covered by filled or stroked paths.
// The second return value is false if nothing has been painted yet.
func (w *Writer) Extent() (rect.Rect, bool) {
	return w.extent, w.painted
}

// Raw appends pre-rendered command text to the stream.
// A final newline is added if text does not end in one.
func (w *Writer) Raw(text string) {
	if w.Err != nil || text == "" {
		return
	}
	if text[len(text)-1] != '\n' {
		text += "\n"
	}
	_, w.Err = io.WriteString(w.Content, text)
}

// Call invokes the named procedure.  The arguments are pushed onto the
// operand stack in the given order, so that the last argument ends up on
// top of the stack.
func (w *Writer) Call(name string, args ...float64) {
	if w.Err != nil {
		return
	}
	if !IsValidName(name) {
		w.Err = fmt.Errorf("Call: invalid procedure name %q", name)
		return
	}
	w.RecordProcedure(name)

	fields := make([]any, 0, len(args)+1)
	for _, x := range args {
		fields = append(fields, w.num(x))
	}
	fields = append(fields, name)
	w.emit(fields...)
}

// RecordProcedure notes that the stream invokes the named procedure,
// without writing anything.  This is used for pre-rendered command text.
func (w *Writer) RecordProcedure(name string) {
	if w.procSeen[name] {
		return
	}
	w.procSeen[name] = true
	w.procs = append(w.procs, name)
}

// TrackPainted adds the rectangle with corners (x0, y0) and (x1, y1), given
// in user space, to the painted extent without writing anything.  This is
// used when a procedure call paints the area.
func (w *Writer) TrackPainted(x0, y0, x1, y1 float64) {
	saved := w.path
	w.path = pathState{}
	w.addPoint(x0, y0)
	w.addPoint(x1, y0)
	w.addPoint(x1, y1)
	w.addPoint(x0, y1)
	w.paint(0)
	w.path = saved
}

// TrackPoint adds the point (x, y), given in user space, to the current
// path without writing anything.  This is used when a procedure call builds
// the path, so that the extent of the painted area remains known.
func (w *Writer) TrackPoint(x, y float64) {
	w.addPoint(x, y)
}

func (w *Writer) emit(args ...any) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, args...)
}

// num formats a number for use as an operand.
func (w *Writer) num(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		if w.Err == nil {
			w.Err = fmt.Errorf("invalid number %g", x)
		}
		return "0"
	}
	return Format(x)
}

// Format formats a number in plain decimal notation, using the shortest
// representation which reads back as the same float64.
func Format(x float64) string {
	if x == 0 {
		// avoid "-0"
		x = 0
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func (w *Writer) addPoint(x, y float64) {
	px, py := w.CTM.Apply(x, y)
	if !w.path.nonEmpty {
		w.path.box = rect.Rect{LLx: px, LLy: py, URx: px, URy: py}
		w.path.nonEmpty = true
		return
	}
	w.path.box.LLx = min(w.path.box.LLx, px)
	w.path.box.LLy = min(w.path.box.LLy, py)
	w.path.box.URx = max(w.path.box.URx, px)
	w.path.box.URy = max(w.path.box.URy, py)
}

// paint adds the current path, enlarged by margin on all sides, to the
// painted extent and clears the path.
func (w *Writer) paint(margin float64) {
	if w.path.nonEmpty {
		b := w.path.box
		b.LLx -= margin
		b.LLy -= margin
		b.URx += margin
		b.URy += margin
		w.extend(b)
	}
	w.path = pathState{}
}

// extend adds b, given in page coordinates, to the painted extent.
func (w *Writer) extend(b rect.Rect) {
	if !w.painted {
		w.extent = b
		w.painted = true
		return
	}
	w.extent.LLx = min(w.extent.LLx, b.LLx)
	w.extent.LLy = min(w.extent.LLy, b.LLy)
	w.extent.URx = max(w.extent.URx, b.URx)
	w.extent.URy = max(w.extent.URy, b.URy)
}

var errNoCurrentPoint = errors.New("no current point")

// IsValidName reports whether s can be used as a PostScript name without
// quoting.
func IsValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7f {
			return false
		}
		switch c {
		case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
			return false
		}
	}
	// numbers would be parsed as numbers, not names
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}
	return true
}
