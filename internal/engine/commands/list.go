// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/rlisp/internal/common/type/str"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/rlisp/internal/common/validate"
)

func car(args []cell.I) (cell.I, error) {
	return access(args, pair.Car)
}

func cdr(args []cell.I) (cell.I, error) {
	return access(args, pair.Cdr)
}

func cons(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	return pair.Cons(args[0], args[1]), nil
}

func makeList(args []cell.I) (cell.I, error) {
	return list.New(append([]cell.I{}, args...)...), nil
}

func concatenate(args []cell.I) (cell.I, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	kind := args[0]
	if !sym.Is(kind) {
		return nil, condition.WrongTypeSimple(kind, "SEQUENCE")
	}

	switch sym.To(kind).Text() {
	case "LIST":
		for _, a := range args[1:] {
			if !list.Is(a) {
				return nil, condition.WrongType(a, "SEQUENCE")
			}
		}

		return list.Join(args[1:]...), nil
	case "STRING":
		s := ""

		for _, a := range args[1:] {
			switch {
			case str.Is(a):
				s += str.To(a).Text()
			case list.Empty(a):
			default:
				return nil, condition.WrongType(a, "SEQUENCE")
			}
		}

		return str.New(s), nil
	}

	return nil, condition.WrongTypeSimple(kind, "SEQUENCE")
}

func access(args []cell.I, f func(cell.I) (cell.I, bool)) (cell.I, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	v, ok := f(args[0])
	if !ok {
		return nil, condition.WrongType(args[0], "LIST")
	}

	return v, nil
}
