// Released under an MIT license. See LICENSE.

// Package commands provides the rlisp builtins that receive evaluated
// arguments and need nothing from the environment.
package commands

import (
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
)

// Command is the signature shared by every builtin in this package.
type Command func(args []cell.I) (cell.I, error)

// Functions returns the builtins keyed by symbol name.
func Functions() map[string]Command {
	return map[string]Command{
		"*":           mul,
		"+":           add,
		"-":           sub,
		"/":           div,
		"CAR":         car,
		"CDR":         cdr,
		"CONCATENATE": concatenate,
		"CONS":        cons,
		"LIST":        makeList,
	}
}
