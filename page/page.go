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

// Package page implements pages of a PostScript document.
//
// A page collects the command text of the shapes placed on it.  The
// accumulated text is merged into a document by [Page.Fabricate].
package page

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/rect"

	"github.com/codewithkyle/pslib"
	"github.com/codewithkyle/pslib/graphics"
	"github.com/codewithkyle/pslib/shape"
)

// Page is a single page of a document.
type Page struct {
	// Width and Height give the page size in PostScript points.
	Width, Height int

	buf bytes.Buffer
	w   *graphics.Writer
}

// New allocates a new, empty page.  Dimensions smaller than one point are
// raised to one.
func New(width, height int) *Page {
	p := &Page{
		Width:  max(width, 1),
		Height: max(height, 1),
	}
	p.w = graphics.NewWriter(&p.buf)
	return p
}

// FromSize allocates a new, empty page with the given paper size.
func FromSize(s Size) *Page {
	return New(s.Width, s.Height)
}

// Add renders s and appends the result to the page content.
// Shapes are painted in the order they are added.
//
// If a shape cannot be rendered, the error is kept and reported by
// [Page.Err] and [Page.Fabricate]; further shapes are ignored.
func (p *Page) Add(s shape.Shape) *Page {
	if p.w.Err == nil {
		s.Draw(p.w)
	}
	return p
}

// Err reports the first error encountered while rendering shapes.
func (p *Page) Err() error {
	if p.w.Err != nil {
		return p.w.Err
	}
	if d := p.w.Depth(); d > 0 {
		return fmt.Errorf("page content has %d unmatched gsave", d)
	}
	return nil
}

// Content returns the command text accumulated so far.
func (p *Page) Content() []byte {
	return p.buf.Bytes()
}

// Procedures lists the prolog procedures invoked by the page content,
// in order of first use.
func (p *Page) Procedures() []string {
	return p.w.Procedures()
}

// BoundingBox returns the area covered by the page content.  If nothing
// has been painted, the full page is returned.
func (p *Page) BoundingBox() rect.Rect {
	if ext, ok := p.w.Extent(); ok {
		return ext
	}
	return p.box()
}

func (p *Page) box() rect.Rect {
	return rect.Rect{URx: float64(p.Width), URy: float64(p.Height)}
}

// Fabricate writes the page to out.
//
// For PostScript documents the content is wrapped in a page setup and a
// final showpage.  EPS documents receive the bare content.
// This implements the [pslib.Fabricator] interface.
func (p *Page) Fabricate(out io.Writer, tp pslib.DocumentType) error {
	if err := p.Err(); err != nil {
		return err
	}

	switch tp {
	case pslib.PS:
		_, err := fmt.Fprintf(out, "%%%%PageBoundingBox: 0 0 %d %d\n<< /PageSize [%d %d] >> setpagedevice\n",
			p.Width, p.Height, p.Width, p.Height)
		if err != nil {
			return err
		}
		if _, err := out.Write(p.buf.Bytes()); err != nil {
			return err
		}
		_, err = io.WriteString(out, "showpage\n")
		return err
	case pslib.EPS:
		_, err := out.Write(p.buf.Bytes())
		return err
	default:
		return errUnknownType
	}
}

var errUnknownType = errors.New("unknown document type")

var _ pslib.Fabricator = (*Page)(nil)
