// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/engine/commands"
)

// A handler implements an operator in the COMMON-LISP package. Handlers
// that are not evaluated receive their arguments as read.
type handler struct {
	evaluated bool
	fn        func(e *T, args []cell.I) (cell.I, error)
}

func handlers() map[string]handler {
	m := map[string]handler{
		"BACKQUOTE":    {false, (*T).backquote},
		"BLOCK":        {false, (*T).block},
		"DEFMACRO":     {false, (*T).defmacro},
		"DEFPARAMETER": {false, (*T).defparameter},
		"DEFUN":        {false, (*T).defun},
		"DEFVAR":       {false, (*T).defvar},
		"EVAL":         {false, (*T).eval},
		"EVAL-WHEN":    {false, (*T).evalWhen},
		"FUNCTION":     {false, (*T).function},
		"LAMBDA":       {false, (*T).lambda},
		"PROGN":        {false, (*T).progn},
		"PROGV":        {false, (*T).progv},
		"QUOTE":        {false, (*T).quote},
		"RETURN-FROM":  {false, (*T).returnFrom},

		"APROPOS-LIST":    {true, (*T).aproposList},
		"FUNCALL":         {true, (*T).funcall},
		"MACROEXPAND-1":   {true, (*T).macroexpand1},
		"SYMBOL-FUNCTION": {true, (*T).symbolFunction},
		"SYMBOL-PACKAGE":  {true, (*T).symbolPackage},
		"SYMBOL-VALUE":    {true, (*T).symbolValue},
	}

	for name, c := range commands.Functions() {
		c := c
		m[name] = handler{true, func(_ *T, args []cell.I) (cell.I, error) {
			return c(args)
		}}
	}

	return m
}
