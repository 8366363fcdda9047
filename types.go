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

package pslib

import (
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// DocumentType selects the flavour of PostScript output.
type DocumentType int

// These are the supported document types.
const (
	PS  DocumentType = iota // multi-page PostScript
	EPS                     // Encapsulated PostScript, at most one page
)

func (tp DocumentType) String() string {
	switch tp {
	case PS:
		return "PS"
	case EPS:
		return "EPS"
	default:
		return fmt.Sprintf("DocumentType(%d)", int(tp))
	}
}

// ParseDocumentType converts a name like "ps" or "eps" into a
// DocumentType.  Case is ignored.
func ParseDocumentType(s string) (DocumentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ps", "postscript":
		return PS, nil
	case "eps", "epsf":
		return EPS, nil
	default:
		return 0, fmt.Errorf("unknown document type %q", s)
	}
}

// Fabricator is implemented by objects which can be merged into a
// document, for example pages.
type Fabricator interface {
	// Fabricate writes the object to w, formatted for a document of
	// type tp.
	Fabricate(w io.Writer, tp DocumentType) error
}

// The following interfaces can optionally be implemented by a
// [Fabricator] to allow a [Document] to check the object before any
// output is written.
type (
	// procedureUser lists the prolog procedures an object invokes.
	procedureUser interface {
		Procedures() []string
	}

	// errHolder reports problems found while building the object.
	errHolder interface {
		Err() error
	}

	// boxer reports the area painted by the object.
	boxer interface {
		BoundingBox() rect.Rect
	}
)
