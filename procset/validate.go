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
	"fmt"
	"strings"

	"seehuhn.de/go/postscript"
)

// maxValidateOps limits the number of interpreter steps used to validate a
// single procedure.
const maxValidateOps = 100_000

// Validate checks that the body of p is syntactically well-formed and
// defines the name p.Name as a procedure.  The body is run through a
// PostScript interpreter which knows only the basic operators, so bodies
// which execute graphics operators at definition time are rejected.
func Validate(p *Procedure) error {
	if p.Name == "" {
		return &SyntaxError{Err: errMissingName}
	}

	intp := postscript.NewInterpreter()
	intp.MaxOps = maxValidateOps
	err := intp.Execute(strings.NewReader(p.Body))
	if err != nil {
		return &SyntaxError{Name: p.Name, Err: err}
	}

	key := postscript.Name(p.Name)
	for i := len(intp.DictStack) - 1; i >= 0; i-- {
		val, ok := intp.DictStack[i][key]
		if !ok {
			continue
		}
		if _, isProc := val.(postscript.Procedure); !isProc {
			return &SyntaxError{Name: p.Name, Err: fmt.Errorf("defined as %T, not as a procedure", val)}
		}
		return nil
	}
	return &SyntaxError{Name: p.Name, Err: errNotDefined}
}

// ValidateAll runs [Validate] on every procedure in r, in order, and returns
// the first error.
func (r *Registry) ValidateAll() error {
	for _, p := range r.List() {
		if err := Validate(p); err != nil {
			return err
		}
	}
	return nil
}

// SyntaxError indicates that the body of a procedure is not valid.
type SyntaxError struct {
	Name string
	Err  error
}

func (err *SyntaxError) Error() string {
	if err.Name == "" {
		return "invalid procedure: " + err.Err.Error()
	}
	return fmt.Sprintf("invalid procedure %q: %v", err.Name, err.Err)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

var (
	errMissingName = errors.New("missing procedure name")
	errNotDefined  = errors.New("body does not define the procedure name")
)
