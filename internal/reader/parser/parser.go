// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for rlisp.
package parser

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/token"
	"github.com/michaelmacinnis/rlisp/internal/common/type/form"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/num"
	"github.com/michaelmacinnis/rlisp/internal/common/type/str"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

// ErrIncomplete is returned when the tokens run out in the middle of a form.
var ErrIncomplete = errors.New("incomplete form") //nolint:gochecknoglobals

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	depth int             // Enclosing backquotes.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that reads tokens by calling item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes the tokens for one top-level form. It returns nil and no
// error when there are no more tokens.
func (p *T) Parse() (c cell.I, err error) {
	p.ahead = 0
	p.depth = 0
	p.token = nil

	if p.peek() == nil {
		return nil, nil
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok {
			panic(r)
		}

		err = e
	}()

	return p.datum(), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) required() *token.T {
	t := p.peek()
	if t == nil {
		panic(ErrIncomplete)
	}

	return t
}

// T state functions.

// <datum> ::= <markers> (<atom> | <string> | <list> | <quoted>) .
func (p *T) datum() cell.I {
	marks := p.markers()

	templated := strings.ContainsRune(marks, '`')
	outermost := templated && p.depth == 0

	if templated {
		p.depth++
		defer func() { p.depth-- }()
	}

	c := p.unmarked()

	if marks != "" {
		c = c.(marker.I).WithMarks(marks + marker.Of(c))
	}

	if outermost {
		c = form.New(sym.New("backquote"), c)
	}

	return c
}

// <markers> ::= ('`' | ',' | CommaAt)* .
func (p *T) markers() string {
	marks := ""

	for p.required().Is('`', ',', token.CommaAt) {
		marks += p.consume().Value()
	}

	return marks
}

func (p *T) unmarked() cell.I {
	t := p.required()

	switch {
	case t.Is('('):
		p.consume()

		return p.list()
	case t.Is('\''):
		p.consume()

		return form.New(sym.New("quote"), p.datum())
	case t.Is(token.Function):
		p.consume()

		return form.New(sym.New("function"), p.datum())
	case t.Is(token.String):
		p.consume()

		text := t.Value()

		s, err := adapted.ActualBytes(text[1 : len(text)-1])
		if err != nil {
			panic(condition.BadToken("invalid escape sequence", text))
		}

		return str.New(s)
	case t.Is(token.Atom):
		p.consume()

		return atom(t.Value())
	}

	panic(condition.BadToken("unexpected token", t.Value()))
}

// <list> ::= '(' <datum>* ')' .
func (p *T) list() cell.I {
	var elems []cell.I

	for !p.required().Is(')') {
		elems = append(elems, p.datum())
	}

	p.consume()

	if len(elems) == 0 {
		return list.Nil
	}

	head := elems[0]

	switch {
	case sym.Is(head) && marker.Of(head) == "" && !sym.To(head).Keyword():
		return form.New(head, elems[1:]...)
	case form.Is(head) && marker.Of(head) == "" && form.To(head).Operator() == "LAMBDA":
		return form.New(sym.New("funcall"), elems...)
	}

	return list.New(elems...)
}

func atom(s string) cell.I {
	if n, ok := num.New(s); ok {
		return n
	}

	if strings.EqualFold(s, "nil") {
		return list.Nil
	}

	return sym.New(s)
}
