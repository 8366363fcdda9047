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

// Package ascii85 implements the ASCII base-85 encoding used by the
// PostScript ASCII85Decode filter and by "<~ ... ~>" string literals.
//
// Unlike [encoding/ascii85], the encoder here breaks the output into lines,
// writes "z" for groups of four zero bytes and terminates the data with the
// end-of-data marker "~>".
package ascii85

import "io"

// lineLength is the maximal number of characters per output line,
// excluding the newline.
const lineLength = 75

// NewEncoder returns a writer which encodes data to w.  The caller must
// call Close to write the final group and the end-of-data marker.  Closing
// the encoder does not close w.
func NewEncoder(w io.Writer) io.WriteCloser {
	return &encoder{
		w:   w,
		buf: make([]byte, 0, lineLength+8),
	}
}

type encoder struct {
	w   io.Writer
	buf []byte
	v   uint32
	k   int
	err error
}

func (e *encoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	for i, b := range p {
		e.v = e.v<<8 | uint32(b)
		e.k++
		if e.k < 4 {
			continue
		}

		if len(e.buf)+5 > lineLength {
			if err := e.flush(); err != nil {
				return i, err
			}
		}
		v := e.v
		if v == 0 {
			e.buf = append(e.buf, 'z')
		} else {
			var c [5]byte
			for j := 4; j >= 0; j-- {
				c[j] = byte(v%85) + '!'
				v /= 85
			}
			e.buf = append(e.buf, c[:]...)
		}
		e.v = 0
		e.k = 0
	}
	return len(p), nil
}

// Close writes any buffered data, followed by "~>".
func (e *encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if e.k != 0 {
		// A partial group of k bytes is padded with zeros, and only
		// the first k+1 characters are written.
		v := e.v << ((4 - e.k) * 8)
		var c [5]byte
		for j := 4; j >= 0; j-- {
			c[j] = byte(v%85) + '!'
			v /= 85
		}
		e.buf = append(e.buf, c[:e.k+1]...)
		e.v = 0
		e.k = 0
	}
	e.buf = append(e.buf, '~', '>')
	return e.flush()
}

func (e *encoder) flush() error {
	e.buf = append(e.buf, '\n')
	_, e.err = e.w.Write(e.buf)
	e.buf = e.buf[:0]
	return e.err
}
