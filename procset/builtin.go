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

package procset

// Names of the builtin procedures.
const (
	// Rect builds a closed rectangular path.  The calling convention is
	//
	//	-w 0 0 -h w 0 0 h x y rect
	//
	// which traces the rectangle counterclockwise, starting at (x, y).
	Rect = "rect"

	// Line builds a straight path from (x, y) to (x+dx, y+dy).  The calling
	// convention is
	//
	//	dx dy x y line
	Line = "line"
)

var builtins = []*Procedure{
	{
		Name: Rect,
		Body: `/rect {
newpath
moveto
rlineto
rlineto
rlineto
rlineto
closepath
} def
`,
	},
	{
		Name: Line,
		Body: `/line {
newpath
moveto
rlineto
} def
`,
	},
}

// WithBuiltins returns a new registry, preloaded with the builtin
// procedures [Rect] and [Line].
func WithBuiltins() *Registry {
	r := NewRegistry()
	for _, p := range builtins {
		r.Add(p)
	}
	return r
}
