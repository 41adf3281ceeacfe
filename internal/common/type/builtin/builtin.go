// Released under an MIT license. See LICENSE.

// Package builtin provides the callable type for operators implemented by
// the evaluator itself.
package builtin

import (
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
)

const name = "builtin"

// T (builtin) names an entry in the evaluator's handler table.
type T struct {
	name    string
	special bool
}

type builtin = T

// New creates a builtin called n. A special builtin receives its
// arguments unevaluated.
func New(n string, special bool) *builtin {
	return &builtin{name: n, special: special}
}

// Equal returns true if c is a builtin with the same name.
func (b *builtin) Equal(c cell.I) bool {
	return Is(c) && To(c).name == b.name
}

// Name returns the type name for the builtin b.
func (b *builtin) Name() string {
	return name
}

// Special is true if b receives its arguments unevaluated.
func (b *builtin) Special() bool {
	return b.special
}

// String returns the text representation of the builtin b.
func (b *builtin) String() string {
	return "#<FUNCTION " + b.name + ">"
}

// Text returns the builtin's name.
func (b *builtin) Text() string {
	return b.name
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*builtin)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *builtin {
	if t, ok := c.(*builtin); ok {
		return t
	}

	panic("not a " + name)
}
