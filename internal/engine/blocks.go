// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/block"
	"github.com/michaelmacinnis/rlisp/internal/common/type/form"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/rlisp/internal/common/validate"
)

// An exit unwinds to the block with the identifier id.
type exit struct {
	id    string
	value cell.I
}

func (x *exit) Error() string {
	return "return-from block " + x.id + " after it was exited"
}

// Operators whose arguments are never scanned for return-from.
//
//nolint:gochecknoglobals
var opaque = map[string]bool{
	"BACKQUOTE": true,
	"DEFMACRO":  true,
	"DEFUN":     true,
	"FUNCTION":  true,
	"LAMBDA":    true,
	"QUOTE":     true,
}

func (e *T) block(args []cell.I) (cell.I, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	label, ok := blockName(args[0])
	if !ok {
		return nil, condition.BadBlockName(args[0])
	}

	return e.enter(nil, func() *block.T {
		return block.New(label, args[1:])
	})
}

func (e *T) progn(args []cell.I) (cell.I, error) {
	return e.enter(nil, func() *block.T {
		return block.Internal(block.Progn, args)
	})
}

func (e *T) returnFrom(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 1, 2); err != nil {
		return nil, err
	}

	label, ok := blockName(args[0])
	if !ok {
		return nil, condition.BadBlockName(args[0])
	}

	n := sym.To(label).Text()

	target := e.env.Nearest(n)
	if target == nil {
		return nil, condition.UnknownBlock(n)
	}

	var (
		v   = list.Nil
		err error
	)

	if len(args) == 2 {
		v, err = e.progn(args[1:])
		if err != nil {
			return nil, err
		}
	}

	target.Request()

	return nil, &exit{id: target.ID(), value: v}
}

// Enter a block with a new frame holding bindings and evaluate its body.
func (e *T) enter(bindings map[string]cell.I, create func() *block.T) (cell.I, error) {
	e.env.Replace(bindings)
	defer e.env.Release()

	b := create()

	e.env.Push(b)
	defer e.env.Pop()

	if err := e.scan(b.Body(), nil); err != nil {
		return nil, err
	}

	return e.sequence(b)
}

func (e *T) scan(cs []cell.I, names []string) error {
	for _, c := range cs {
		if !form.Is(c) || marker.Of(c) != "" {
			continue
		}

		f := form.To(c)
		op := f.Operator()
		args := f.Args()

		if opaque[op] || e.macro(op) != nil {
			continue
		}

		switch op {
		case "BLOCK":
			if len(args) == 0 {
				continue
			}

			label, ok := blockName(args[0])
			if !ok {
				continue
			}

			nested := append(names[:len(names):len(names)], sym.To(label).Text())
			if err := e.scan(args[1:], nested); err != nil {
				return err
			}

			continue
		case "RETURN-FROM":
			if len(args) == 0 {
				continue
			}

			label, ok := blockName(args[0])
			if !ok {
				return condition.BadBlockName(args[0])
			}

			if n := sym.To(label).Text(); !contains(names, n) && e.env.Nearest(n) == nil {
				return condition.UnknownBlock(n)
			}

			args = args[1:]
		}

		if err := e.scan(args, names); err != nil {
			return err
		}
	}

	return nil
}

func (e *T) sequence(b *block.T) (cell.I, error) {
	v := list.Nil

	for _, c := range b.Body() {
		r, err := e.Eval(c)
		if err != nil {
			var x *exit
			if errors.As(err, &x) && x.id == b.ID() {
				return x.value, nil
			}

			return nil, err
		}

		v = r

		if b.Requested() {
			break
		}
	}

	return v, nil
}

func contains(names []string, n string) bool {
	for _, s := range names {
		if s == n {
			return true
		}
	}

	return false
}

// The symbol naming a block. NIL is a block name.
func blockName(c cell.I) (cell.I, bool) {
	if c == list.Nil {
		return sym.New("NIL"), true
	}

	if !sym.Is(c) || marker.Of(c) != "" {
		return nil, false
	}

	return c, true
}
