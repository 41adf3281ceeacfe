// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/block"
	"github.com/michaelmacinnis/rlisp/internal/common/type/form"
	"github.com/michaelmacinnis/rlisp/internal/common/type/lambda"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/str"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/rlisp/internal/common/validate"
	"github.com/michaelmacinnis/rlisp/internal/engine/expand"
)

func (e *T) backquote(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return expand.Template(args[0], e)
}

func (e *T) defmacro(args []cell.I) (cell.I, error) {
	return e.define(args, true)
}

func (e *T) defun(args []cell.I) (cell.I, error) {
	return e.define(args, false)
}

func (e *T) define(args []cell.I, macro bool) (cell.I, error) {
	if err := validate.Variadic(args, 2); err != nil {
		return nil, err
	}

	name, err := validate.Symbol(args[0])
	if err != nil {
		return nil, err
	}

	l, err := lambda.Named(name, macro, form.Data(args[1]), args[2:])
	if err != nil {
		return nil, err
	}

	r := e.env.Current().Intern(name)
	r.SetFunction(l, macro)
	r.SetDoc(l.Doc())

	return args[0], nil
}

func (e *T) defparameter(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 2, 3); err != nil {
		return nil, err
	}

	return e.global(args, true)
}

func (e *T) defvar(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1, 3); err != nil {
		return nil, err
	}

	return e.global(args, false)
}

// Define a global variable. Unless always is set, a bound variable keeps
// its value and the initial value is not evaluated.
func (e *T) global(args []cell.I, always bool) (cell.I, error) {
	name, err := validate.Symbol(args[0])
	if err != nil {
		return nil, err
	}

	if name == "T" || sym.To(args[0]).Keyword() {
		return nil, condition.Simplef("%s is a constant", name)
	}

	r := e.env.Intern(name)

	if len(args) == 3 { //nolint:gomnd
		if !str.Is(args[2]) {
			return nil, condition.WrongTypeSimple(args[2], "STRING")
		}

		r.SetDoc(str.To(args[2]).Text())
	}

	if _, bound := r.Value(); len(args) > 1 && (always || !bound) {
		v, err := e.Eval(args[1])
		if err != nil {
			return nil, err
		}

		r.SetValue(v)
	}

	return args[0], nil
}

// A macro call is expanded and evaluated once. Anything else is evaluated
// and its value is evaluated as code.
func (e *T) eval(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	c := args[0]

	if form.Is(c) && marker.Of(c) == "" {
		if m := e.macro(form.To(c).Operator()); m != nil {
			x, err := e.expand(m, form.To(c))
			if err != nil {
				return nil, err
			}

			return e.Eval(x)
		}
	}

	v, err := e.Eval(c)
	if err != nil {
		return nil, err
	}

	return e.Eval(form.Code(v))
}

func (e *T) evalWhen(args []cell.I) (cell.I, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	situations := form.Data(args[0])
	if !list.Is(situations) {
		return nil, condition.WrongTypeSimple(situations, "LIST")
	}

	for _, s := range list.To(situations).Elements() {
		if sym.Is(s) && sym.To(s).Text() == ":EXECUTE" {
			return e.progn(args[1:])
		}
	}

	return list.Nil, nil
}

func (e *T) function(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	c := args[0]

	if form.Is(c) && form.To(c).Operator() == "LAMBDA" {
		return e.lambda(form.To(c).Args())
	}

	name, err := validate.Symbol(c)
	if err != nil {
		return nil, condition.WrongTypeSimple(c, "FUNCTION")
	}

	r := e.env.Lookup(name)
	if r == nil || r.Function() == nil {
		return nil, e.undefined(name)
	}

	if r.Macro() {
		return nil, notFunction(r.Home(), name)
	}

	return r.Function(), nil
}

func (e *T) lambda(args []cell.I) (cell.I, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	l, err := lambda.New(form.Data(args[0]), args[1:], e.env.Function())
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (e *T) progv(args []cell.I) (cell.I, error) {
	if err := validate.Variadic(args, 2); err != nil {
		return nil, err
	}

	names, err := e.sequenceOf(args[0])
	if err != nil {
		return nil, err
	}

	values, err := e.sequenceOf(args[1])
	if err != nil {
		return nil, err
	}

	bindings := make(map[string]cell.I, len(names))

	for i, c := range names {
		name, err := validate.Symbol(c)
		if err != nil {
			return nil, err
		}

		bindings[name] = list.Nil
		if i < len(values) {
			bindings[name] = values[i]
		}
	}

	return e.enter(bindings, func() *block.T {
		return block.Internal(block.Progv, args[2:])
	})
}

func (e *T) quote(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return form.Data(args[0]), nil
}

func (e *T) sequenceOf(c cell.I) ([]cell.I, error) {
	v, err := e.Eval(c)
	if err != nil {
		return nil, err
	}

	if !list.Is(v) {
		return nil, condition.WrongType(v, "LIST")
	}

	return list.To(v).Elements(), nil
}
