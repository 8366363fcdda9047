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

package page

import "strings"

// Size is a paper size, in PostScript points.
type Size struct {
	Width, Height int
}

// Landscape returns the size with width and height exchanged, such
// that the longer side is horizontal.
func (s Size) Landscape() Size {
	if s.Width >= s.Height {
		return s
	}
	return Size{Width: s.Height, Height: s.Width}
}

// Common paper sizes, in portrait orientation.
var (
	A3     = Size{Width: 842, Height: 1191}
	A4     = Size{Width: 595, Height: 842}
	A5     = Size{Width: 420, Height: 595}
	Letter = Size{Width: 612, Height: 792}
	Legal  = Size{Width: 612, Height: 1008}
)

var paperNames = map[string]Size{
	"a3":     A3,
	"a4":     A4,
	"a5":     A5,
	"letter": Letter,
	"legal":  Legal,
}

// LookupSize returns the paper size with the given name.  Names are
// case-insensitive; a "-landscape" suffix selects landscape orientation,
// for example "A4-landscape".
func LookupSize(name string) (Size, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	base, landscape := strings.CutSuffix(name, "-landscape")
	s, ok := paperNames[base]
	if !ok {
		return Size{}, false
	}
	if landscape {
		s = s.Landscape()
	}
	return s, true
}
