// Released under an MIT license. See LICENSE.

package commands

import (
	"testing"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/num"
	"github.com/michaelmacinnis/rlisp/internal/common/type/str"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

type harness struct {
	t *testing.T
}

func setup(t *testing.T) *harness {
	return &harness{t: t}
}

func (h *harness) call(name string, want string, args ...cell.I) {
	h.t.Helper()

	v, err := Functions()[name](args)
	if err != nil {
		h.t.Fatalf("(%s %v): %v", name, args, err)
	}

	if got := v.String(); got != want {
		h.t.Fatalf("(%s %v): got %s, want %s", name, args, got, want)
	}
}

func (h *harness) fail(name string, kind condition.Kind, args ...cell.I) {
	h.t.Helper()

	_, err := Functions()[name](args)
	if !condition.Is(err, kind) {
		h.t.Fatalf("(%s %v): expected %s, got %v", name, args, kind, err)
	}
}

func ints(ns ...int64) []cell.I {
	cs := make([]cell.I, len(ns))
	for i, n := range ns {
		cs[i] = num.Int(n)
	}

	return cs
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.call("+", "6", ints(1, 2, 3)...)
	h.call("-", "-5", ints(5)...)
	h.call("-", "4", ints(10, 5, 1)...)
	h.call("*", "24", ints(2, 3, 4)...)
	h.call("/", "0.25", ints(4)...)
	h.call("/", "2.5", ints(10, 4)...)
	h.call("+", "3.5", num.Int(1), str.New("2.5"))
	h.call("*", "1267650600228229401496703205376", ints(1<<50, 1<<50)...)

	h.fail("+", condition.SimpleProgram)
	h.fail("/", condition.DivisionByZero, ints(1, 0)...)
	h.fail("/", condition.DivisionByZero, ints(0)...)
	h.fail("+", condition.Type, num.Int(1), list.Nil)
	h.fail("+", condition.Type, num.Int(1), sym.New("a"))
	h.fail("+", condition.ParseFloat, num.Int(1), str.New("abc"))
}

func TestLists(t *testing.T) {
	h := setup(t)

	l := list.New(ints(1, 2, 3)...)

	h.call("CAR", "1", l)
	h.call("CDR", "(2 3)", l)
	h.call("CAR", "NIL", list.Nil)
	h.call("CONS", "(0 1 2 3)", num.Int(0), l)
	h.call("CONS", "(1 . 2)", ints(1, 2)...)
	h.call("LIST", "(1 2)", ints(1, 2)...)
	h.call("LIST", "NIL")

	h.fail("CAR", condition.Type, num.Int(1))
	h.fail("CAR", condition.SimpleProgram, l, l)
	h.fail("CONS", condition.SimpleProgram, l)
}

func TestConcatenate(t *testing.T) {
	h := setup(t)

	h.call("CONCATENATE", "(1 2 3)", sym.New("list"), list.New(ints(1)...), list.Nil, list.New(ints(2, 3)...))
	h.call("CONCATENATE", `"ab"`, sym.New("string"), str.New("a"), str.New("b"))

	h.fail("CONCATENATE", condition.SimpleType, sym.New("vector"), list.Nil)
	h.fail("CONCATENATE", condition.Type, sym.New("list"), num.Int(1))
	h.fail("CONCATENATE", condition.Type, sym.New("string"), num.Int(1))
}
