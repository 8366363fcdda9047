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

import "errors"

var (
	// ErrClosed is returned when a document is used after Close.
	ErrClosed = errors.New("document is closed")

	// ErrMultiplePages is returned when a second page is added to an
	// EPS document.
	ErrMultiplePages = errors.New("EPS documents can contain only one page")

	errBuilt         = errors.New("Build called more than once")
	errNoBoundingBox = errors.New("EPS page does not report its bounding box")
)

// WriteError is returned when writing to the output of a document fails.
// The document is then only partially written and must be discarded.
type WriteError struct {
	Err error
}

func (err *WriteError) Error() string {
	return "cannot write document: " + err.Err.Error()
}

func (err *WriteError) Unwrap() error {
	return err.Err
}

// UndefinedProcedureError is returned when a page invokes a procedure
// which is not defined in the document prolog.
type UndefinedProcedureError struct {
	Name string
}

func (err *UndefinedProcedureError) Error() string {
	return "procedure " + err.Name + " is not defined in the prolog"
}
