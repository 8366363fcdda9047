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

// Package pslib writes PostScript and Encapsulated PostScript (EPS) files.
//
// A [Document] is a stream of pages written to an [io.Writer].  The
// document header and the prolog, which holds the reusable procedures
// invoked by the page content, are written when the document is created.
// Pages are appended one at a time and the trailer is written by
// [Document.Close]:
//
//	doc, err := pslib.Create("out.ps", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	p := page.FromSize(page.A4)
//	p.Add(shape.NewRect(0, 0, 100, 100).FillRGB(1, 0, 0))
//	err = doc.Add(p)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = doc.Close()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Documents can also be configured step by step using a [Builder].
// Pages are implemented in package
// [github.com/codewithkyle/pslib/page], the shapes drawn on them in
// package [github.com/codewithkyle/pslib/shape].
package pslib
