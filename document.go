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
	"errors"
	"io"
	"os"
	"strconv"
	"time"

	"seehuhn.de/go/geom/rect"

	"github.com/codewithkyle/pslib/internal/memfile"
	"github.com/codewithkyle/pslib/procset"
)

// Options contains settings for creating a new document.
// The zero value selects a multi-page PostScript document without
// procedures.
type Options struct {
	// Type selects between PostScript and EPS output.
	Type DocumentType

	// BoundingBox, if set, is written into the header of EPS documents.
	// Otherwise the bounding box is computed from the page content and
	// written into the trailer.
	BoundingBox *rect.Rect

	// Procedures are written into the document prolog, in registry order.
	// The registry is copied, later changes have no effect on the document.
	Procedures *procset.Registry

	// Strict enables validation of all procedure bodies.
	Strict bool

	// Title, Creator and CreationDate are written into the DSC header.
	// Empty values are omitted, except for Creator which defaults to
	// "pslib".
	Title        string
	Creator      string
	CreationDate time.Time
}

// Document is a PostScript or EPS document which is being written.
type Document struct {
	// Type is the type of the document.  It cannot be changed after the
	// document has been created.
	Type DocumentType

	w         *sinkWriter
	base      io.Writer
	closeBase bool

	procs *procset.Registry

	numPages  int
	bbox      rect.Rect
	bboxAtEnd bool

	err    error
	closed bool
}

// New starts a new document which is written to w.  The header and
// the prolog are written before New returns.
//
// If w is nil, the document is kept in memory and can be retrieved using
// [Document.Bytes] after the document has been closed.  If opt is nil,
// default options are used.
func New(w io.Writer, opt *Options) (*Document, error) {
	if opt == nil {
		opt = &Options{}
	}

	closeBase := false
	if w == nil {
		w = memfile.New()
		closeBase = true
	}

	doc := &Document{
		Type:      opt.Type,
		w:         &sinkWriter{w: w},
		base:      w,
		closeBase: closeBase,
		procs:     procset.NewRegistry(),
	}
	if opt.Type != PS && opt.Type != EPS {
		return nil, errors.New("invalid document type " + opt.Type.String())
	}
	if opt.Type == EPS && opt.BoundingBox == nil {
		doc.bboxAtEnd = true
	}

	// Merging into an empty registry cannot fail.
	_ = doc.procs.Merge(opt.Procedures, false)
	if opt.Strict {
		err := doc.procs.ValidateAll()
		if err != nil {
			return nil, err
		}
	}

	if _, err := doc.w.Write(doc.header(opt)); err != nil {
		return nil, err
	}
	if _, err := doc.w.Write(doc.prolog()); err != nil {
		return nil, err
	}

	return doc, nil
}

// Create creates the named file and starts a new document in it.  If a
// file with the same name exists, it is overwritten.  The file is closed
// by [Document.Close].
func Create(name string, opt *Options) (*Document, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	doc, err := New(fd, opt)
	if err != nil {
		fd.Close()
		return nil, err
	}
	doc.closeBase = true
	return doc, nil
}

// Add appends a page to the document.
//
// The page is checked before any output is written: all procedures it
// invokes must be defined in the prolog, and EPS documents take only a
// single page.  If an EPS document has no explicit bounding box, the page
// must provide a BoundingBox() method.  If writing to the output fails, the error is returned as
// a [*WriteError] and all further calls return the same error.
func (doc *Document) Add(f Fabricator) error {
	if doc.closed {
		return ErrClosed
	}
	if doc.err != nil {
		return doc.err
	}
	if doc.Type == EPS && doc.numPages > 0 {
		return ErrMultiplePages
	}

	if doc.Type == EPS && doc.bboxAtEnd {
		if _, ok := f.(boxer); !ok {
			return errNoBoundingBox
		}
	}

	if h, ok := f.(errHolder); ok {
		if err := h.Err(); err != nil {
			return err
		}
	}
	if u, ok := f.(procedureUser); ok {
		for _, name := range u.Procedures() {
			if !doc.procs.Has(name) {
				return &UndefinedProcedureError{Name: name}
			}
		}
	}

	doc.numPages++
	if doc.Type == PS {
		_, err := doc.w.Write([]byte("%%Page: " + strconv.Itoa(doc.numPages) + " " + strconv.Itoa(doc.numPages) + "\n"))
		if err != nil {
			doc.err = err
			return err
		}
	}

	err := f.Fabricate(doc.w, doc.Type)
	if err != nil {
		// Part of the page may have been written already.
		doc.err = err
		return err
	}

	if b, ok := f.(boxer); ok && doc.bboxAtEnd {
		doc.bbox = b.BoundingBox()
	}

	return nil
}

// Close writes the document trailer.  If the output implements a
// Flush() method, this is called next.  Finally, the output is closed if
// it was opened by [Create] or if the document is kept in memory.
//
// After Close has been called, no more pages can be added.  Calling Close
// a second time returns [ErrClosed].
func (doc *Document) Close() error {
	if doc.closed {
		return ErrClosed
	}
	doc.closed = true

	err := doc.err
	if err == nil {
		_, err = doc.w.Write(doc.trailer())
	}
	if f, ok := doc.base.(interface{ Flush() error }); ok && err == nil {
		if e := f.Flush(); e != nil {
			err = &WriteError{Err: e}
		}
	}
	if c, ok := doc.base.(io.Closer); ok && doc.closeBase {
		if e := c.Close(); e != nil && err == nil {
			err = &WriteError{Err: e}
		}
	}

	doc.err = err
	return err
}

// Bytes returns the contents of an in-memory document, as created by
// calling [New] with a nil writer.  For other documents, nil is returned.
func (doc *Document) Bytes() []byte {
	if mf, ok := doc.base.(*memfile.MemFile); ok {
		return mf.Bytes()
	}
	return nil
}

// NumPages returns the number of pages added so far.
func (doc *Document) NumPages() int {
	return doc.numPages
}

// Procedures returns the names of the procedures defined in the prolog.
func (doc *Document) Procedures() []string {
	return doc.procs.Names()
}

// Size returns the number of bytes written so far.
func (doc *Document) Size() int64 {
	return doc.w.pos
}

// sinkWriter counts the bytes written and marks errors from the
// underlying writer as [*WriteError].
type sinkWriter struct {
	w   io.Writer
	pos int64
}

func (w *sinkWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	if err != nil {
		return n, &WriteError{Err: err}
	}
	return n, nil
}
