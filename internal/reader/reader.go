// Released under an MIT license. See LICENSE.

// Package reader turns lines of text into rlisp forms.
package reader

import (
	"errors"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/token"
	"github.com/michaelmacinnis/rlisp/internal/reader/lexer"
	"github.com/michaelmacinnis/rlisp/internal/reader/parser"
)

// T (reader) encapsulates the rlisp lexer and parser.
type T struct {
	next   int
	p      *parser.T
	s      *lexer.T
	tokens []*token.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{s: lexer.New(name)}

	r.p = parser.New(func() *token.T {
		if r.next >= len(r.tokens) {
			return nil
		}

		t := r.tokens[r.next]
		r.next++

		return t
	})

	return r
}

// Incomplete is true when the reader holds part of a form.
func (r *reader) Incomplete() bool {
	return len(r.tokens) > 0 || r.s.Pending()
}

// Reset discards any partial form.
func (r *reader) Reset() {
	r.next = 0
	r.s.Reset()
	r.tokens = nil
}

// Scan reads the line and returns every form it completes. A partial form
// is kept until a later line completes it. On a syntax error the forms
// read before the error are returned along with the error and the rest
// of the input is discarded.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.s.Scan(line)

	for t := r.s.Token(); t != nil; t = r.s.Token() {
		r.tokens = append(r.tokens, t)
	}

	var forms []cell.I

	for len(r.tokens) > 0 {
		r.next = 0

		c, err := r.p.Parse()
		if errors.Is(err, parser.ErrIncomplete) {
			break
		}

		if err != nil {
			r.Reset()

			return forms, err
		}

		forms = append(forms, c)
		r.tokens = r.tokens[r.next:]
	}

	r.next = 0

	return forms, nil
}
