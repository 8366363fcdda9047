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

// Package memfile provides the in-memory sink used by documents which are
// not written to a caller-supplied writer.
package memfile

import "errors"

// MemFile is an append-only in-memory file.
//
// After Close has been called, all writes fail with [ErrClosed], but the
// contents remain available via [MemFile.Bytes].
type MemFile struct {
	data   []byte
	closed bool
}

// New creates a new, empty MemFile.
func New() *MemFile {
	return &MemFile{}
}

// Write appends p to the file.
// This implements the [io.Writer] interface.
func (f *MemFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	f.data = append(f.data, p...)
	return len(p), nil
}

// Flush does nothing, since the data is already in memory.
func (f *MemFile) Flush() error {
	return nil
}

// Close marks the file as closed.
// This implements the [io.Closer] interface.
func (f *MemFile) Close() error {
	f.closed = true
	return nil
}

// Bytes returns the file contents.  The returned slice aliases the
// internal buffer and must not be modified.
func (f *MemFile) Bytes() []byte {
	return f.data
}

// Len returns the number of bytes written so far.
func (f *MemFile) Len() int {
	return len(f.data)
}

// ErrClosed is returned when writing to a closed MemFile.
var ErrClosed = errors.New("memfile: file already closed")
