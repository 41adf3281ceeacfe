// Released under an MIT license. See LICENSE.

package engine

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/block"
	"github.com/michaelmacinnis/rlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/rlisp/internal/common/type/form"
	"github.com/michaelmacinnis/rlisp/internal/common/type/lambda"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/str"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/rlisp/internal/common/validate"
)

func notFunction(home, name string) error {
	return condition.Undefined(home+"::"+name+" is a macro, not a function", "")
}

// Call the function l. A named function's body is a block with its name.
func (e *T) call(l *lambda.T, args []cell.I) (cell.I, error) {
	bindings, err := l.Bind(args)
	if err != nil {
		return nil, err
	}

	return e.enter(bindings, body(l))
}

// Expand the macro call f. The arguments are bound as data and the
// expansion is returned as code.
func (e *T) expand(m *lambda.T, f *form.T) (cell.I, error) {
	args := make([]cell.I, len(f.Args()))
	for i, a := range f.Args() {
		args[i] = form.Data(a)
	}

	bindings, err := m.Bind(args)
	if err != nil {
		return nil, err
	}

	v, err := e.enter(bindings, body(m))
	if err != nil {
		return nil, err
	}

	x := form.Code(v)

	log.WithFields(log.Fields{
		"expansion": x,
		"macro":     m.Text(),
	}).Debug("macro expanded")

	return x, nil
}

func body(l *lambda.T) func() *block.T {
	if l.Text() == "" {
		return func() *block.T {
			return block.Internal(block.Lambda, l.Body())
		}
	}

	return func() *block.T {
		return block.Function(sym.New(l.Text()), l.Body())
	}
}

func (e *T) aproposList(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	var pattern string

	switch c := args[0]; {
	case str.Is(c):
		pattern = str.To(c).Text()
	case sym.Is(c):
		pattern = sym.To(c).Text()
	default:
		return nil, condition.WrongTypeSimple(c, "STRING")
	}

	pattern = strings.ToUpper(pattern)
	if !strings.ContainsAny(pattern, "*?[") {
		pattern = "*" + pattern + "*"
	}

	var found []cell.I

	for _, n := range e.env.Names() {
		ok, err := adapted.Match(pattern, n)
		if err != nil {
			return nil, condition.Simplef("bad pattern %s: %v", pattern, err)
		}

		if ok {
			found = append(found, sym.New(n))
		}
	}

	return list.New(found...), nil
}

func (e *T) funcall(args []cell.I) (cell.I, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	fn := args[0]
	if sym.Is(fn) {
		name := sym.To(fn).Text()

		r := e.env.Lookup(name)
		if r == nil || r.Function() == nil {
			return nil, e.undefined(name)
		}

		if r.Macro() {
			return nil, notFunction(r.Home(), name)
		}

		fn = r.Function()
	}

	switch {
	case builtin.Is(fn):
		b := builtin.To(fn)
		if b.Special() {
			return nil, condition.Undefined(b.Text()+" is a special operator, not a function", "")
		}

		return e.handlers[b.Text()].fn(e, args[1:])
	case lambda.Is(fn):
		l := lambda.To(fn)
		if l.Macro() {
			home := e.env.Current().Text()
			if r := e.env.Lookup(l.Text()); r != nil {
				home = r.Home()
			}

			return nil, notFunction(home, l.Text())
		}

		return e.call(l, args[1:])
	}

	return nil, condition.WrongType(fn, "FUNCTION")
}

func (e *T) macroexpand1(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	c := form.Code(args[0])
	if !form.Is(c) {
		return args[0], nil
	}

	m := e.macro(form.To(c).Operator())
	if m == nil {
		return args[0], nil
	}

	x, err := e.expand(m, form.To(c))
	if err != nil {
		return nil, err
	}

	return form.Data(x), nil
}

func (e *T) symbolFunction(args []cell.I) (cell.I, error) {
	name, err := symbol(args)
	if err != nil {
		return nil, err
	}

	fn := e.callable(name)
	if fn == nil {
		return nil, e.undefined(name)
	}

	return fn, nil
}

func (e *T) symbolPackage(args []cell.I) (cell.I, error) {
	name, err := symbol(args)
	if err != nil {
		return nil, err
	}

	r := e.env.Lookup(name)
	if r == nil {
		return e.env.Current(), nil
	}

	return e.env.Package(r.Home()), nil
}

func (e *T) symbolValue(args []cell.I) (cell.I, error) {
	if _, err := symbol(args); err != nil {
		return nil, err
	}

	return e.variable(sym.To(args[0]))
}

func symbol(args []cell.I) (string, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return "", err
	}

	return validate.Symbol(args[0])
}
