// Released under an MIT license. See LICENSE.

// Package block provides the named block type that return-from targets.
package block

import (
	"strings"

	"github.com/google/uuid"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

// Internal block names. These can never be the target of return-from.
const (
	Lambda = "(LAMBDA)"
	Progn  = "(PROGN)"
	Progv  = "(PROGV)"
)

// T (block) is an entered block.
type T struct {
	body      []cell.I
	function  bool
	id        string
	label     cell.I
	returning bool
}

type block = T

// New creates a block with a fresh id.
func New(label cell.I, body []cell.I) *block {
	return &block{
		body:  body,
		id:    ID(),
		label: label,
	}
}

// Function creates a block for the body of the function named label.
func Function(label cell.I, body []cell.I) *block {
	b := New(label, body)
	b.function = true

	return b
}

// Internal creates a block with one of the internal names.
func Internal(name string, body []cell.I) *block {
	return New(sym.New(name), body)
}

// ID returns a new opaque 8 character identifier.
func ID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Body returns the forms in the block b.
func (b *block) Body() []cell.I {
	return b.body
}

// Function is true if the block is the body of a named function.
func (b *block) Function() bool {
	return b.function
}

// ID returns the block's unique identifier.
func (b *block) ID() string {
	return b.id
}

// Label returns the cell naming the block.
func (b *block) Label() cell.I {
	return b.label
}

// Name returns the block's name or the empty string if it is not a symbol.
func (b *block) Name() string {
	if sym.Is(b.label) {
		return sym.To(b.label).Text()
	}

	return ""
}

// Request flags the block as the target of a return-from.
func (b *block) Request() {
	b.returning = true
}

// Requested is true when a return-from has targeted the block.
func (b *block) Requested() bool {
	return b.returning
}

// Targetable is true for blocks that return-from may name.
func (b *block) Targetable() bool {
	switch b.Name() {
	case "", Lambda, Progn, Progv:
		return false
	}

	return true
}
