// Released under an MIT license. See LICENSE.

// Package condition provides the errors signalled by rlisp code.
package condition

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies the class of a condition.
type Kind int

// Condition kinds.
const (
	Block Kind = iota
	DivisionByZero
	Parse
	ParseFloat
	ReturnFrom
	Simple
	SimpleProgram
	SimpleType
	Type
	UnboundVariable
	UndefinedFunction
)

//nolint:gochecknoglobals
var kinds = map[Kind]string{
	Block:             "BLOCK-ERROR",
	DivisionByZero:    "DIVISION-BY-ZERO",
	Parse:             "PARSE-ERROR",
	ParseFloat:        "TYPE-ERROR",
	ReturnFrom:        "CONTROL-ERROR",
	Simple:            "SIMPLE-ERROR",
	SimpleProgram:     "SIMPLE-PROGRAM-ERROR",
	SimpleType:        "SIMPLE-TYPE-ERROR",
	Type:              "TYPE-ERROR",
	UnboundVariable:   "UNBOUND-VARIABLE",
	UndefinedFunction: "UNDEFINED-FUNCTION",
}

// String returns the Lisp name of the condition kind k.
func (k Kind) String() string {
	return kinds[k]
}

// T (condition) is an rlisp error.
type T struct {
	cause    error
	datum    string
	details  string
	expected string
	kind     Kind
}

// Error returns the message for the condition t.
func (t *T) Error() string {
	switch t.kind {
	case Block:
		return "The block name " + t.datum + " is not a symbol."
	case DivisionByZero:
		return t.kind.String()
	case Parse:
		return t.kind.String() + " " + t.details + " - bad token: " + t.datum
	case ParseFloat:
		return t.typed() + " -> " + t.cause.Error()
	case ReturnFrom:
		return "Return for unknown block: " + t.datum
	case SimpleType, Type:
		return t.typed()
	case SimpleProgram:
		return t.kind.String() + " " + strconv.Quote(t.details)
	case UndefinedFunction:
		s := t.kind.String() + " " + t.details
		if t.datum != "" {
			s += " (did you mean " + t.datum + "?)"
		}

		return s
	}

	return t.kind.String() + " " + t.details
}

// Kind returns the class of the condition t.
func (t *T) Kind() Kind {
	return t.kind
}

// Unwrap returns the error that caused t, if any.
func (t *T) Unwrap() error {
	return t.cause
}

func (t *T) typed() string {
	return t.kind.String() + " expected-type: " + t.expected + " datum: " + t.datum
}

// Is returns true if err is, or wraps, a condition of kind k.
func Is(err error, k Kind) bool {
	var c *T
	if errors.As(err, &c) {
		return c.kind == k
	}

	return false
}

// ArgumentCount signals a call with the wrong number of arguments.
func ArgumentCount(n int) *T {
	return &T{
		details: "invalid number of arguments: " + strconv.Itoa(n),
		kind:    SimpleProgram,
	}
}

// BadBlockName signals a block name that is not a symbol.
func BadBlockName(datum fmt.Stringer) *T {
	return &T{datum: datum.String(), kind: Block}
}

// BadFloat signals text that could not be read as a number.
func BadFloat(datum, expected string, cause error) *T {
	return &T{cause: cause, datum: datum, expected: expected, kind: ParseFloat}
}

// BadToken signals a syntax error.
func BadToken(details, token string) *T {
	return &T{datum: token, details: details, kind: Parse}
}

// DivideByZero signals a zero divisor.
func DivideByZero() *T {
	return &T{kind: DivisionByZero}
}

// Simplef signals a generic error.
func Simplef(format string, args ...interface{}) *T {
	return &T{details: fmt.Sprintf(format, args...), kind: Simple}
}

// Unbound signals a reference to a variable with no value.
func Unbound(name string) *T {
	return &T{details: name, kind: UnboundVariable}
}

// Undefined signals a call to something that is not a function.
// The suggestion, when not empty, names a similar function.
func Undefined(details, suggestion string) *T {
	return &T{datum: suggestion, details: details, kind: UndefinedFunction}
}

// UnknownBlock signals a return-from naming a block that is not active.
func UnknownBlock(name string) *T {
	return &T{datum: name, kind: ReturnFrom}
}

// WrongType signals a datum that is not of the expected type.
func WrongType(datum fmt.Stringer, expected string) *T {
	return &T{datum: datum.String(), expected: expected, kind: Type}
}

// WrongTypeSimple signals a datum that is not of the expected type,
// detected while checking the shape of a call.
func WrongTypeSimple(datum fmt.Stringer, expected string) *T {
	return &T{datum: datum.String(), expected: expected, kind: SimpleType}
}
