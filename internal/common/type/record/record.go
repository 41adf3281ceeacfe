// Released under an MIT license. See LICENSE.

// Package record provides the per-symbol record kept by each package.
package record

import (
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
)

const name = "symbol-record"

// T (record) holds everything a package knows about a symbol.
type T struct {
	doc      string
	function cell.I
	home     string
	macro    bool
	name     string
	value    cell.I
}

type record = T

// New creates a record for the symbol name whose home is the package home.
func New(name, home string) *record {
	return &record{home: home, name: name}
}

// Doc returns the symbol's documentation string.
func (r *record) Doc() string {
	return r.doc
}

// Equal returns true if c is the same record as r.
func (r *record) Equal(c cell.I) bool {
	return Is(c) && To(c) == r
}

// Function returns the callable bound to the symbol, if any.
func (r *record) Function() cell.I {
	return r.function
}

// Home returns the name of the symbol's home package.
func (r *record) Home() string {
	return r.home
}

// Macro is true if the symbol names a macro.
func (r *record) Macro() bool {
	return r.macro
}

// Name returns the type name for the record r.
func (r *record) Name() string {
	return name
}

// SetDoc sets the symbol's documentation string.
func (r *record) SetDoc(doc string) {
	r.doc = doc
}

// SetFunction binds the callable f to the symbol.
// When macro is true the symbol names a macro.
func (r *record) SetFunction(f cell.I, macro bool) {
	r.function = f
	r.macro = macro
}

// SetValue sets the symbol's global dynamic value.
func (r *record) SetValue(v cell.I) {
	r.value = v
}

// String returns the symbol's name.
func (r *record) String() string {
	return r.name
}

// Value returns the symbol's global dynamic value and true if it is bound.
func (r *record) Value() (cell.I, bool) {
	return r.value, r.value != nil
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*record)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *record {
	if t, ok := c.(*record); ok {
		return t
	}

	panic("not a " + name)
}
