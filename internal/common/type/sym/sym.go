// Released under an MIT license. See LICENSE.

// Package sym provides rlisp's symbol cell type.
package sym

import (
	"strings"
	"sync"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
)

const name = "symbol"

// T (sym) is a symbol. Unmarked symbols are interned.
type T struct {
	marks string
	name  string
}

type sym = T

// True is the symbol T.
var True cell.I //nolint:gochecknoglobals

// New creates a sym cell with the canonical (upper case) form of v.
func New(v string) cell.I {
	return symnew(strings.ToUpper(v))
}

// Equal returns true if c is a sym with the same name and markers.
func (s *sym) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)

	return s.name == o.name && s.marks == o.marks
}

// Keyword returns true if the sym s lives in the keyword package.
func (s *sym) Keyword() bool {
	return strings.HasPrefix(s.name, ":")
}

// Marks returns the backquote and comma markers that preceded s.
func (s *sym) Marks() string {
	return s.marks
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.marks + s.name
}

// Text returns the name of the sym s without markers.
func (s *sym) Text() string {
	return s.name
}

// WithMarks returns a copy of s preceded by marks.
func (s *sym) WithMarks(marks string) cell.I {
	if marks == "" {
		return symnew(s.name)
	}

	return &sym{marks: marks, name: s.name}
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic("not a " + name)
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func init() { //nolint:gochecknoinits
	True = New("T")
}

func symnew(v string) *sym {
	cachel.RLock()
	p, ok := cache[v]
	cachel.RUnlock()

	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	p = &sym{name: v}
	cache[v] = p

	return p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type can be preceded by backquote and comma markers.
	_ = marker.I(&t)
}
