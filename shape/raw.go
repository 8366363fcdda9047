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

import "github.com/codewithkyle/pslib/graphics"

// Raw is pre-rendered PostScript command text, for example the output of a
// text layout engine.  The text is copied to the page verbatim.
type Raw struct {
	text  string
	procs []string
}

// NewRaw returns a shape which writes text to the page.  The names of any
// prolog procedures invoked by the text should be listed in procs, so that
// documents can check that they are defined.
func NewRaw(text string, procs ...string) Raw {
	return Raw{text: text, procs: procs}
}

// Draw implements the [Shape] interface.
func (r Raw) Draw(w *graphics.Writer) {
	for _, name := range r.procs {
		w.RecordProcedure(name)
	}
	w.Raw(r.text)
}
