// Released under an MIT license. See LICENSE.

// Package pkg provides rlisp's package type: a named symbol table.
package pkg

import (
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/hash"
	"github.com/michaelmacinnis/rlisp/internal/common/type/record"
)

// Standard package names.
const (
	CommonLisp     = "COMMON-LISP"
	CommonLispUser = "COMMON-LISP-USER"
	Keyword        = "KEYWORD"
)

const name = "package"

// T (pkg) maps symbol names to records.
type T struct {
	name    string
	symbols *hash.T
}

type pkg = T

// New creates an empty package called n.
func New(n string) *pkg {
	return &pkg{name: n, symbols: hash.New()}
}

// Define adds or replaces the record r.
func (p *pkg) Define(r *record.T) {
	p.symbols.Set(r.String(), r)
}

// Equal returns true if c is the same package as p.
func (p *pkg) Equal(c cell.I) bool {
	return Is(c) && To(c) == p
}

// Intern returns the record for k, creating it if it does not exist.
func (p *pkg) Intern(k string) *record.T {
	if r := p.Lookup(k); r != nil {
		return r
	}

	r := record.New(k, p.name)
	p.Define(r)

	return r
}

// Lookup returns the record for k or nil if p has no such symbol.
func (p *pkg) Lookup(k string) *record.T {
	v, ok := p.symbols.Get(k)
	if !ok {
		return nil
	}

	return record.To(v)
}

// Name returns the type name for the package p.
func (p *pkg) Name() string {
	return name
}

// Names returns the sorted names of the symbols in p.
func (p *pkg) Names() []string {
	return p.symbols.Keys()
}

// String returns the text representation of the package p.
func (p *pkg) String() string {
	return "#<PACKAGE \"" + p.name + "\">"
}

// Text returns the package's name.
func (p *pkg) Text() string {
	return p.name
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*pkg)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *pkg {
	if t, ok := c.(*pkg); ok {
		return t
	}

	panic("not a " + name)
}
