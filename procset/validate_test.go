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

package procset

import (
	"errors"
	"testing"
)

func TestValidateBuiltins(t *testing.T) {
	if err := WithBuiltins().ValidateAll(); err != nil {
		t.Error(err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		p  *Procedure
		ok bool
	}{
		{&Procedure{Name: "inch", Body: "/inch { 72 mul } def"}, true},
		{&Procedure{Name: "box", Body: "% comment\n/box {\nnewpath\n} def\n"}, true},
		{&Procedure{Name: "x", Body: "/y { 1 } def"}, false},
		{&Procedure{Name: "x", Body: "/x 5 def"}, false},
		{&Procedure{Name: "x", Body: "/x { 1 def"}, false},
		{&Procedure{Name: "", Body: "/x {} def"}, false},
	}
	for _, c := range cases {
		err := Validate(c.p)
		if c.ok && err != nil {
			t.Errorf("%q: unexpected error %v", c.p.Body, err)
		} else if !c.ok {
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("%q: expected SyntaxError, got %v", c.p.Body, err)
			}
		}
	}
}
