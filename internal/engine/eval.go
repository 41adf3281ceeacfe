// Released under an MIT license. See LICENSE.

package engine

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
	"github.com/michaelmacinnis/rlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/rlisp/internal/common/type/form"
	"github.com/michaelmacinnis/rlisp/internal/common/type/lambda"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/rlisp/internal/engine/cursor"
	"github.com/michaelmacinnis/rlisp/internal/engine/expand"
)

func errComma() error {
	return condition.Simplef("comma not inside a backquote")
}

func errIncomplete(name string) error {
	return condition.Simplef("%s: end of input inside a form", name)
}

// Configure prepares the top-level form c for evaluation. Commas outside
// a template are rejected. A macro call is rewritten as (EVAL c).
func (e *T) Configure(c cell.I) (cell.I, error) {
	if err := commas(c); err != nil {
		return nil, err
	}

	if form.Is(c) && marker.Of(c) == "" && e.macro(form.To(c).Operator()) != nil {
		return form.New(sym.New("eval"), c), nil
	}

	return c, nil
}

// Eval evaluates c.
func (e *T) Eval(c cell.I) (cell.I, error) {
	m := marker.Of(c)

	switch {
	case strings.ContainsRune(m, ','):
		return nil, errComma()
	case strings.ContainsRune(m, '`'):
		return expand.Template(c, e)
	case form.Is(c):
		return cursor.Reduce(form.To(c), e)
	case sym.Is(c):
		return e.variable(sym.To(c))
	}

	return c, nil
}

// Apply applies the form f. Its arguments have been evaluated if the
// operator evaluates its arguments.
func (e *T) Apply(f *form.T) (cell.I, error) {
	name := f.Operator()

	switch fn := e.callable(name); {
	case fn == nil:
		return nil, e.undefined(name)
	case builtin.Is(fn):
		return e.handlers[builtin.To(fn).Text()].fn(e, f.Args())
	case lambda.To(fn).Macro():
		x, err := e.expand(lambda.To(fn), f)
		if err != nil {
			return nil, err
		}

		return e.Eval(x)
	default:
		return e.call(lambda.To(fn), f.Args())
	}
}

// Argument evaluates an argument the cursor did not descend into.
func (e *T) Argument(c cell.I) (cell.I, error) {
	return e.Eval(c)
}

// Descend is true unless f is a special form or a macro call.
func (e *T) Descend(f *form.T) bool {
	switch fn := e.callable(f.Operator()); {
	case builtin.Is(fn):
		return !builtin.To(fn).Special()
	case lambda.Is(fn):
		return !lambda.To(fn).Macro()
	}

	return true
}

func (e *T) callable(name string) cell.I {
	r := e.env.Lookup(name)
	if r == nil {
		return nil
	}

	return r.Function()
}

func (e *T) macro(name string) *lambda.T {
	if fn := e.callable(name); lambda.Is(fn) && lambda.To(fn).Macro() {
		return lambda.To(fn)
	}

	return nil
}

func (e *T) undefined(name string) error {
	var names []string

	for _, n := range e.env.Names() {
		if e.callable(n) != nil {
			names = append(names, n)
		}
	}

	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		return condition.Undefined(name, "")
	}

	sort.Sort(ranks)

	return condition.Undefined(name, ranks[0].Target)
}

func (e *T) variable(s *sym.T) (cell.I, error) {
	name := s.Text()

	switch name {
	case "NIL":
		return list.Nil, nil
	case "T":
		return sym.True, nil
	}

	if v, ok := e.env.Value(name); ok {
		return v, nil
	}

	if s.Keyword() {
		return s, nil
	}

	return nil, condition.Unbound(name)
}

// Commas outside a template are an error. Templates are checked when expanded.
func commas(c cell.I) error {
	m := marker.Of(c)

	switch {
	case strings.ContainsRune(m, '`'):
		return nil
	case strings.ContainsRune(m, ','):
		return errComma()
	}

	var es []cell.I

	switch {
	case form.Is(c):
		f := form.To(c)
		if f.Operator() == "BACKQUOTE" {
			return nil
		}

		es = f.Args()
	case list.Is(c):
		es = list.To(c).Elements()
	}

	for _, e := range es {
		if err := commas(e); err != nil {
			return err
		}
	}

	return nil
}
