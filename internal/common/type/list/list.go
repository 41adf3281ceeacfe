// Released under an MIT license. See LICENSE.

// Package list provides rlisp's literal list type. Lists are data: they are
// never evaluated as calls. The empty list is NIL.
package list

import (
	"github.com/michaelmacinnis/rlisp/internal/common"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
)

const name = "list"

// T (list) is an ordered sequence of cells.
type T struct {
	elems []cell.I
	marks string
}

type list = T

// Nil is the empty list.
var Nil cell.I = &list{} //nolint:gochecknoglobals

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return Nil
	}

	return &list{elems: elements}
}

// Join creates a new list with every element from every list in lists.
// A non-list in lists will cause a panic.
func Join(lists ...cell.I) cell.I {
	n := 0
	for _, l := range lists {
		n += To(l).Len()
	}

	joined := make([]cell.I, 0, n)
	for _, l := range lists {
		joined = append(joined, To(l).elems...)
	}

	return New(joined...)
}

// Elements returns the elements of the list l. The slice must not be modified.
func (l *list) Elements() []cell.I {
	return l.elems
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(l.elems) != len(o.elems) || l.marks != o.marks {
		return false
	}

	for i, e := range l.elems {
		if !e.Equal(o.elems[i]) {
			return false
		}
	}

	return true
}

// Len returns the number of elements in the list l.
func (l *list) Len() int {
	return len(l.elems)
}

// Marks returns the backquote and comma markers that preceded l.
func (l *list) Marks() string {
	return l.marks
}

// Name returns the name for the list type.
func (l *list) Name() string {
	return name
}

// String returns the text representation of the list l.
func (l *list) String() string {
	if len(l.elems) == 0 {
		return l.marks + "NIL"
	}

	return l.marks + "(" + common.Join(l.elems, " ") + ")"
}

// Tail returns a list of every element of l after the first.
func (l *list) Tail() cell.I {
	if len(l.elems) < 2 { //nolint:gomnd
		return Nil
	}

	return New(l.elems[1:]...)
}

// WithMarks returns a copy of l preceded by marks.
func (l *list) WithMarks(marks string) cell.I {
	if marks == "" && len(l.elems) == 0 {
		return Nil
	}

	return &list{elems: l.elems, marks: marks}
}

// Empty returns true if c is the empty list.
func Empty(c cell.I) bool {
	return Is(c) && To(c).Len() == 0
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type can be preceded by backquote and comma markers.
	_ = marker.I(&t)
}
