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
	"io"
	"time"

	"seehuhn.de/go/geom/rect"

	"github.com/codewithkyle/pslib/procset"
)

// Builder collects the settings for a new document.  The setter methods
// return the builder, so that calls can be chained:
//
//	doc, err := pslib.NewBuilder().
//		DocumentType(pslib.EPS).
//		LoadProcedures(procset.WithBuiltins()).
//		Build()
//
// Without further settings, Build returns an in-memory PostScript document.
type Builder struct {
	opt   Options
	w     io.Writer
	procs []*procset.Registry
	built bool
}

// NewBuilder returns a builder with default settings.
func NewBuilder() *Builder {
	return &Builder{}
}

// DocumentType sets the type of the document.
func (b *Builder) DocumentType(tp DocumentType) *Builder {
	b.opt.Type = tp
	return b
}

// Writer sets the output of the document.  If this is not called, the
// document is kept in memory.
func (b *Builder) Writer(w io.Writer) *Builder {
	b.w = w
	return b
}

// LoadProcedures adds the procedures from r to the document prolog.
// This can be called repeatedly.  The registries are merged in the order
// of the calls; in non-strict mode, later definitions replace earlier
// ones with the same name.
func (b *Builder) LoadProcedures(r *procset.Registry) *Builder {
	if r != nil {
		b.procs = append(b.procs, r)
	}
	return b
}

// BoundingBox sets the bounding box of an EPS document to the rectangle
// from (0, 0) to (width, height).  Values smaller than one are raised to
// one.
func (b *Builder) BoundingBox(width, height int) *Builder {
	b.opt.BoundingBox = &rect.Rect{
		URx: float64(max(width, 1)),
		URy: float64(max(height, 1)),
	}
	return b
}

// Title sets the document title.
func (b *Builder) Title(title string) *Builder {
	b.opt.Title = title
	return b
}

// Creator sets the name of the program which created the document.
func (b *Builder) Creator(creator string) *Builder {
	b.opt.Creator = creator
	return b
}

// CreationDate sets the creation date written into the document header.
func (b *Builder) CreationDate(t time.Time) *Builder {
	b.opt.CreationDate = t
	return b
}

// Strict enables strict mode.  In strict mode, procedure names must be
// unique across all calls to [Builder.LoadProcedures] and all procedure
// bodies are validated.
func (b *Builder) Strict(strict bool) *Builder {
	b.opt.Strict = strict
	return b
}

// Build creates the document and writes the header and prolog.
// Build can only be called once.
func (b *Builder) Build() (*Document, error) {
	if b.built {
		return nil, errBuilt
	}
	b.built = true

	procs := procset.NewRegistry()
	for _, r := range b.procs {
		err := procs.Merge(r, b.opt.Strict)
		if err != nil {
			return nil, err
		}
	}

	opt := b.opt
	opt.Procedures = procs
	return New(b.w, &opt)
}
