// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"strings"

	"github.com/nukata/goarith"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/num"
	"github.com/michaelmacinnis/rlisp/internal/common/type/str"
	"github.com/michaelmacinnis/rlisp/internal/common/validate"
)

func add(args []cell.I) (cell.I, error) {
	return fold(args, goarith.Number.Add)
}

func div(args []cell.I) (cell.I, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	fs := make([]float64, len(args))

	for i, a := range args {
		n, err := operand(a)
		if err != nil {
			return nil, err
		}

		fs[i] = num.To(num.Number(n)).Float()
	}

	if len(fs) == 1 {
		fs = append([]float64{1}, fs...)
	}

	quotient := fs[0]

	for _, f := range fs[1:] {
		if f == 0 {
			return nil, condition.DivideByZero()
		}

		quotient /= f
	}

	return num.Float(quotient), nil
}

func mul(args []cell.I) (cell.I, error) {
	return fold(args, goarith.Number.Mul)
}

func sub(args []cell.I) (cell.I, error) {
	if len(args) == 1 {
		n, err := operand(args[0])
		if err != nil {
			return nil, err
		}

		return num.Number(num.To(num.Zero).Number().Sub(n)), nil
	}

	return fold(args, goarith.Number.Sub)
}

func fold(args []cell.I, op func(goarith.Number, goarith.Number) goarith.Number) (cell.I, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	acc, err := operand(args[0])
	if err != nil {
		return nil, err
	}

	for _, a := range args[1:] {
		n, err := operand(a)
		if err != nil {
			return nil, err
		}

		acc = op(acc, n)
	}

	return num.Number(acc), nil
}

// Strings are read as floats. Anything else that is not a number is an error.
func operand(c cell.I) (goarith.Number, error) {
	switch {
	case num.Is(c):
		return num.To(c).Number(), nil
	case str.Is(c):
		f, err := strconv.ParseFloat(strings.TrimSpace(str.To(c).Text()), 64)
		if err != nil {
			return nil, condition.BadFloat(c.String(), "NUMBER", err)
		}

		return goarith.AsNumber(f), nil
	case list.Empty(c):
		return nil, condition.WrongType(list.Nil, "NUMBER")
	}

	return nil, condition.WrongType(c, "NUMBER")
}
