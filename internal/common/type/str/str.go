// Released under an MIT license. See LICENSE.

// Package str provides rlisp's string type.
package str

import (
	"strings"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
)

const name = "string"

// T (str) wraps Go's string type.
type T struct {
	marks string
	s     string
}

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	return &str{s: v}
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.s == To(c).s
}

// Marks returns the backquote and comma markers that preceded s.
func (s *str) Marks() string {
	return s.marks
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the readable representation of the str s.
func (s *str) String() string {
	return s.marks + `"` + escaper.Replace(s.s) + `"`
}

// Text returns the text of the str s.
func (s *str) Text() string {
	return s.s
}

// WithMarks returns a copy of s preceded by marks.
func (s *str) WithMarks(marks string) cell.I {
	return &str{marks: marks, s: s.s}
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`) //nolint:gochecknoglobals

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type can be preceded by backquote and comma markers.
	_ = marker.I(&t)
}
