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
	"bytes"
	"math"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/geom/rect"

	"github.com/codewithkyle/pslib/graphics"
)

// == Document Structuring Conventions ==

// defaultCreator is used for the %%Creator comment if no creator is given.
const defaultCreator = "pslib"

// header returns the DSC header comments of a document.
func (doc *Document) header(opt *Options) []byte {
	buf := &bytes.Buffer{}

	switch doc.Type {
	case EPS:
		buf.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
		if opt.BoundingBox != nil {
			writeBBox(buf, *opt.BoundingBox)
		} else {
			buf.WriteString("%%BoundingBox: (atend)\n")
		}
	default:
		buf.WriteString("%!PS-Adobe-3.0\n")
	}

	creator := opt.Creator
	if creator == "" {
		creator = defaultCreator
	}
	buf.WriteString("%%Creator: " + dscText(creator) + "\n")
	if opt.Title != "" {
		buf.WriteString("%%Title: " + dscText(opt.Title) + "\n")
	}
	if !opt.CreationDate.IsZero() {
		buf.WriteString("%%CreationDate: " + opt.CreationDate.UTC().Format(time.RFC3339) + "\n")
	}

	buf.WriteString("%%Pages: (atend)\n")
	buf.WriteString("%%EndComments\n")

	return buf.Bytes()
}

// prolog returns the procedure definitions of a document.  The result is
// empty if no procedures are defined.
func (doc *Document) prolog() []byte {
	if doc.procs.Len() == 0 {
		return nil
	}
	buf := &bytes.Buffer{}
	buf.WriteString("%%BeginProlog\n")
	buf.WriteString(doc.procs.String())
	buf.WriteString("%%EndProlog\n")
	return buf.Bytes()
}

// trailer returns the text written by Close, including the final %%EOF.
// An EPS document closed without a page gets an empty bounding box.
func (doc *Document) trailer() []byte {
	buf := &bytes.Buffer{}

	buf.WriteString("%%Trailer\n")
	buf.WriteString("%%Pages: " + strconv.Itoa(doc.numPages) + "\n")
	if doc.Type == EPS && doc.bboxAtEnd {
		writeBBox(buf, doc.bbox)
	}
	buf.WriteString("%%EOF\n")

	return buf.Bytes()
}

// writeBBox writes the %%BoundingBox comment for b.  The integer box is
// rounded outwards; a %%HiResBoundingBox comment follows if b has
// fractional coordinates.
func writeBBox(buf *bytes.Buffer, b rect.Rect) {
	llx, lly := math.Floor(b.LLx), math.Floor(b.LLy)
	urx, ury := math.Ceil(b.URx), math.Ceil(b.URy)
	buf.WriteString("%%BoundingBox: " + joinNumbers(llx, lly, urx, ury) + "\n")
	if llx != b.LLx || lly != b.LLy || urx != b.URx || ury != b.URy {
		buf.WriteString("%%HiResBoundingBox: " + joinNumbers(b.LLx, b.LLy, b.URx, b.URy) + "\n")
	}
}

func joinNumbers(xx ...float64) string {
	parts := make([]string, len(xx))
	for i, x := range xx {
		parts[i] = graphics.Format(x)
	}
	return strings.Join(parts, " ")
}

// dscText makes s safe for use in a single-line DSC comment.
func dscText(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}
