// Released under an MIT license. See LICENSE.

// Package validate checks the shape of the arguments passed to builtins.
package validate

import (
	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

// Variadic returns an error unless there are at least min args.
func Variadic(args []cell.I, min int) error {
	if len(args) < min {
		return condition.ArgumentCount(len(args))
	}

	return nil
}

// Fixed returns an error unless there are between min and max args.
func Fixed(args []cell.I, min, max int) error {
	if len(args) < min || len(args) > max {
		return condition.ArgumentCount(len(args))
	}

	return nil
}

// Symbol returns the name of the unmarked symbol c.
func Symbol(c cell.I) (string, error) {
	if !sym.Is(c) || sym.To(c).Marks() != "" {
		return "", condition.WrongTypeSimple(c, "SYMBOL")
	}

	return sym.To(c).Text(), nil
}
