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

// Package procset manages the named PostScript procedures which are written
// into the prolog of a document.
//
// A [Procedure] is a block of PostScript code which defines a name, for
// example "/rect { ... } def".  Procedures are collected in a [Registry],
// which remembers the order in which names were first added, so that the
// prolog of a document is byte-for-byte reproducible.
//
// The registry does not check that procedures are defined before they are
// invoked; documents check this when a page is merged.
package procset

import (
	"fmt"
	"strings"
)

// Procedure is a named, reusable block of PostScript code.
type Procedure struct {
	// Name is the name defined by the procedure, without the leading slash.
	Name string

	// Body is the PostScript code written into the prolog.
	// The code is expected to define Name.
	Body string
}

// Registry is an insertion-ordered collection of procedures.
// The zero value is an empty registry, ready to use.
type Registry struct {
	order []string
	procs map[string]*Procedure
}

// NewRegistry returns a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add adds a procedure to the registry.  If a procedure with the same name
// is already present, it is replaced but keeps its position in the order.
func (r *Registry) Add(p *Procedure) {
	if r.procs == nil {
		r.procs = make(map[string]*Procedure)
	}
	if _, exists := r.procs[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.procs[p.Name] = p
}

// Insert adds a procedure to the registry.  Unlike [Registry.Add], Insert
// fails with a [*DuplicateError] if the name is already in use.
func (r *Registry) Insert(p *Procedure) error {
	if r.Has(p.Name) {
		return &DuplicateError{Name: p.Name}
	}
	r.Add(p)
	return nil
}

// Get returns the procedure with the given name.
// The second return value indicates whether the name was found.
func (r *Registry) Get(name string) (*Procedure, bool) {
	p, ok := r.procs[name]
	return p, ok
}

// Has reports whether a procedure with the given name is present.
func (r *Registry) Has(name string) bool {
	_, ok := r.procs[name]
	return ok
}

// Len returns the number of procedures in the registry.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns the names of all procedures, in insertion order.
func (r *Registry) Names() []string {
	res := make([]string, len(r.order))
	copy(res, r.order)
	return res
}

// List returns all procedures, in insertion order.
func (r *Registry) List() []*Procedure {
	res := make([]*Procedure, len(r.order))
	for i, name := range r.order {
		res[i] = r.procs[name]
	}
	return res
}

// Merge adds all procedures from other to r, in the order of other.
// If strict is true, Merge fails with a [*DuplicateError] on the first name
// which is already present in r, and r is left unchanged.
func (r *Registry) Merge(other *Registry, strict bool) error {
	if other == nil {
		return nil
	}
	if strict {
		for _, name := range other.order {
			if r.Has(name) {
				return &DuplicateError{Name: name}
			}
		}
	}
	for _, p := range other.List() {
		r.Add(p)
	}
	return nil
}

// Clone returns a copy of the registry.
// The procedures themselves are shared between the two registries.
func (r *Registry) Clone() *Registry {
	res := NewRegistry()
	res.Merge(r, false)
	return res
}

// String returns the concatenated procedure bodies, as they appear in a
// document prolog.
func (r *Registry) String() string {
	b := &strings.Builder{}
	for _, p := range r.List() {
		b.WriteString(p.Body)
		if !strings.HasSuffix(p.Body, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// DuplicateError is returned when a procedure name is registered twice in a
// context which does not allow overwriting.
type DuplicateError struct {
	Name string
}

func (err *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate procedure name %q", err.Name)
}
