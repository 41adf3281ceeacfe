// Released under an MIT license. See LICENSE.

package lambda_test

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/lambda"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/num"
	"github.com/michaelmacinnis/rlisp/internal/common/type/str"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

func symbols(names ...string) cell.I {
	cs := make([]cell.I, len(names))
	for i, n := range names {
		cs[i] = sym.New(n)
	}

	return list.New(cs...)
}

func TestBind(t *testing.T) {
	l, err := lambda.New(symbols("x", "&rest", "more"), nil, "")
	if err != nil {
		t.Fatal(err)
	}

	b, err := l.Bind([]cell.I{num.Int(1), num.Int(2), num.Int(3)})
	if err != nil {
		t.Fatal(err)
	}

	if got := b["X"].String(); got != "1" {
		t.Errorf("X = %s", got)
	}

	if got := b["MORE"].String(); got != "(2 3)" {
		t.Errorf("MORE = %s", got)
	}

	_, err = l.Bind(nil)
	if !condition.Is(err, condition.SimpleProgram) {
		t.Errorf("expected argument count error, got %v", err)
	}
}

func TestParse(t *testing.T) {
	if _, _, err := lambda.Parse(symbols("x", "&rest")); err == nil {
		t.Error("&rest without a name accepted")
	}

	if _, _, err := lambda.Parse(list.New(num.Int(1))); !condition.Is(err, condition.SimpleType) {
		t.Errorf("expected type error, got %v", err)
	}

	if _, _, err := lambda.Parse(num.Int(1)); err == nil {
		t.Error("non-list accepted")
	}
}

func TestString(t *testing.T) {
	l, _ := lambda.New(symbols("x"), []cell.I{str.New("doc"), sym.New("x")}, "")

	if l.Doc() != "doc" || len(l.Body()) != 1 {
		t.Errorf("documentation not split from body")
	}

	want := "#<FUNCTION (LAMBDA (X)) {" + l.ID() + "}>"
	if got := l.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	in, _ := lambda.New(symbols("x"), nil, "F")
	if !strings.Contains(in.String(), ":IN F") {
		t.Errorf("got %s", in.String())
	}

	f, _ := lambda.Named("F", false, symbols("x"), nil)
	if got := f.String(); got != "#<FUNCTION F>" {
		t.Errorf("got %s", got)
	}

	m, _ := lambda.Named("M", true, symbols("x"), nil)
	if got := m.String(); got != "#<MACRO-FUNCTION M>" {
		t.Errorf("got %s", got)
	}
}
