// Released under an MIT license. See LICENSE.

// Package lambda provides rlisp's user defined function type.
package lambda

import (
	"strings"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/block"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/str"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

const name = "function"

// Rest is the lambda list keyword that collects remaining arguments.
const Rest = "&REST"

// T (lambda) is a function or macro defined in rlisp.
type T struct {
	body   []cell.I
	doc    string
	id     string
	in     string
	macro  bool
	name   string
	params []string
	rest   string
}

type lambda = T

// New creates an anonymous function from a lambda list and a body that may
// start with a documentation string. The name in, when not empty, is the
// function the lambda was created in.
func New(lambdaList cell.I, body []cell.I, in string) (*lambda, error) {
	params, rest, err := Parse(lambdaList)
	if err != nil {
		return nil, err
	}

	l := &lambda{
		id:     block.ID(),
		in:     in,
		params: params,
		rest:   rest,
	}

	l.doc, l.body = Doc(body)

	return l, nil
}

// Named creates a function or macro called n.
func Named(n string, macro bool, lambdaList cell.I, body []cell.I) (*lambda, error) {
	l, err := New(lambdaList, body, n)
	if err != nil {
		return nil, err
	}

	l.macro = macro
	l.name = n

	return l, nil
}

// Doc splits a body into its documentation string and remaining forms.
// A lone string is the body, not documentation.
func Doc(body []cell.I) (string, []cell.I) {
	if len(body) > 1 && str.Is(body[0]) {
		return str.To(body[0]).Text(), body[1:]
	}

	return "", body
}

// Parse validates a lambda list of required parameters optionally
// followed by &rest and a name.
func Parse(c cell.I) (params []string, rest string, err error) {
	if !list.Is(c) {
		return nil, "", condition.WrongTypeSimple(c, "LIST")
	}

	es := list.To(c).Elements()

	for i := 0; i < len(es); i++ {
		e := es[i]
		if !sym.Is(e) {
			return nil, "", condition.WrongTypeSimple(e, "SYMBOL")
		}

		s := sym.To(e).Text()
		if s != Rest {
			params = append(params, s)

			continue
		}

		if i+2 != len(es) || !sym.Is(es[i+1]) {
			return nil, "", condition.Simplef("malformed lambda list: %s", c)
		}

		rest = sym.To(es[i+1]).Text()

		break
	}

	return params, rest, nil
}

// Bind pairs the lambda list of l with args.
func (l *lambda) Bind(args []cell.I) (map[string]cell.I, error) {
	n := len(l.params)
	if len(args) < n || (l.rest == "" && len(args) > n) {
		return nil, condition.ArgumentCount(len(args))
	}

	bindings := make(map[string]cell.I, n+1)
	for i, p := range l.params {
		bindings[p] = args[i]
	}

	if l.rest != "" {
		bindings[l.rest] = list.New(args[n:]...)
	}

	return bindings, nil
}

// Body returns the forms evaluated when l is called.
func (l *lambda) Body() []cell.I {
	return l.body
}

// Doc returns the documentation string for l.
func (l *lambda) Doc() string {
	return l.doc
}

// Equal returns true if c is the same function as l.
func (l *lambda) Equal(c cell.I) bool {
	return Is(c) && To(c).id == l.id
}

// ID returns the function's unique identifier.
func (l *lambda) ID() string {
	return l.id
}

// LambdaList returns the text of the lambda list for l.
func (l *lambda) LambdaList() string {
	ps := l.params
	if l.rest != "" {
		ps = append(append([]string{}, ps...), Rest, l.rest)
	}

	return "(" + strings.Join(ps, " ") + ")"
}

// Macro is true if l is a macro.
func (l *lambda) Macro() bool {
	return l.macro
}

// Name returns the type name for the function l.
func (l *lambda) Name() string {
	return name
}

// String returns the text representation of the function l.
func (l *lambda) String() string {
	switch {
	case l.macro:
		return "#<MACRO-FUNCTION " + l.name + ">"
	case l.name != "":
		return "#<FUNCTION " + l.name + ">"
	case l.in != "":
		return "#<FUNCTION (LAMBDA " + l.LambdaList() + " :IN " + l.in + ") {" + l.id + "}>"
	}

	return "#<FUNCTION (LAMBDA " + l.LambdaList() + ") {" + l.id + "}>"
}

// Text returns the name of l or the empty string for an anonymous function.
func (l *lambda) Text() string {
	return l.name
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*lambda)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *lambda {
	if t, ok := c.(*lambda); ok {
		return t
	}

	panic("not a " + name)
}
