// Released under an MIT license. See LICENSE.

// Package pair provides rlisp's cons operations and the dotted pair type
// used when the tail of a cons is not a list.
package pair

import (
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
)

const name = "cons"

// T (pair) is a cons cell whose cdr is not a list.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	return Is(c) && p.car.Equal(To(c).car) && p.cdr.Equal(To(c).cdr)
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return "(" + p.car.String() + " . " + p.cdr.String() + ")"
}

// Functions specific to pair.

// Car returns the car/head/first member of c and true, if c is a list or pair.
// The car of the empty list is the empty list.
func Car(c cell.I) (cell.I, bool) {
	switch {
	case list.Is(c):
		es := list.To(c).Elements()
		if len(es) == 0 {
			return list.Nil, true
		}

		return es[0], true
	case Is(c):
		return To(c).car, true
	}

	return nil, false
}

// Cdr returns the cdr/tail/rest member of c and true, if c is a list or pair.
// The cdr of the empty list is the empty list.
func Cdr(c cell.I) (cell.I, bool) {
	switch {
	case list.Is(c):
		return list.To(c).Tail(), true
	case Is(c):
		return To(c).cdr, true
	}

	return nil, false
}

// Cons conses h and t together. If t is a list, the result is a list.
func Cons(h, t cell.I) cell.I {
	if list.Is(t) {
		es := list.To(t).Elements()

		l := make([]cell.I, 0, len(es)+1)
		l = append(l, h)
		l = append(l, es...)

		return list.New(l...)
	}

	return &pair{car: h, cdr: t}
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *pair {
	if t, ok := c.(*pair); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)
}
