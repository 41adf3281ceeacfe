// Released under an MIT license. See LICENSE.

package cursor

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/form"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/num"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

// An evaluator that sums arguments, never descends into QUOTE and
// records the order of applications.
type adder struct {
	applied []string
	c       *T
	t       *testing.T
}

func (a *adder) Apply(f *form.T) (cell.I, error) {
	if a.c != nil && a.c.leaves() != 1 {
		a.t.Fatalf("%d nodes without a child", a.c.leaves())
	}

	a.applied = append(a.applied, f.String())

	switch f.Operator() {
	case "QUOTE":
		return f.Args()[0], nil
	case "FAIL":
		return nil, errors.New("failed")
	}

	total := int64(0)

	for _, arg := range f.Args() {
		n, ok := num.New(arg.String())
		if !ok {
			return nil, errors.New("not a number: " + arg.String())
		}

		total += int64(num.To(n).Float())
	}

	return num.Int(total), nil
}

func (a *adder) Argument(c cell.I) (cell.I, error) {
	if form.Is(c) {
		return a.Apply(form.To(c))
	}

	return c, nil
}

func (a *adder) Descend(f *form.T) bool {
	return f.Operator() != "QUOTE"
}

func add(args ...cell.I) *form.T {
	return form.New(sym.New("add"), args...)
}

func TestInnermostFirst(t *testing.T) {
	a := &adder{t: t}
	c := &T{}
	a.c = c

	root := add(num.Int(1), add(num.Int(2), add(num.Int(3))), num.Int(4))

	v, err := c.reduce(root, a)
	if err != nil {
		t.Fatal(err)
	}

	if v.String() != "10" {
		t.Fatalf("got %v", v)
	}

	want := []string{"(ADD 3)", "(ADD 2 3)", "(ADD 1 5 4)"}
	for i, s := range want {
		if a.applied[i] != s {
			t.Fatalf("application %d: got %s, want %s", i, a.applied[i], s)
		}
	}

	if root.String() != "(ADD 1 (ADD 2 (ADD 3)) 4)" {
		t.Fatalf("root modified: %v", root)
	}
}

func TestSiblingsUntouched(t *testing.T) {
	a := &adder{t: t}

	quoted := form.New(sym.New("quote"), list.New(num.Int(7)))
	root := add(add(num.Int(1)), quoted, add(num.Int(2)))

	_, err := Reduce(root, a)
	if err == nil {
		t.Fatal("expected the quoted list to reach the adder")
	}

	want := []string{"(ADD 1)", "(QUOTE (7))", "(ADD 2)", "(ADD 1 (7) 2)"}
	if len(a.applied) != len(want) {
		t.Fatalf("unexpected applications %v", a.applied)
	}

	for i, s := range want {
		if a.applied[i] != s {
			t.Fatalf("application %d: got %s, want %s", i, a.applied[i], s)
		}
	}
}

func TestNoDescent(t *testing.T) {
	a := &adder{t: t}

	v, err := Reduce(form.New(sym.New("quote"), add(num.Int(1))), a)
	if err != nil {
		t.Fatal(err)
	}

	if v.String() != "(ADD 1)" {
		t.Fatalf("got %v", v)
	}
}

func TestErrorStops(t *testing.T) {
	a := &adder{t: t}

	root := add(form.New(sym.New("fail")), add(num.Int(1)))

	if _, err := Reduce(root, a); err == nil {
		t.Fatal("expected an error")
	}

	for _, s := range a.applied {
		if s == "(ADD 1)" {
			t.Fatal("evaluation continued after an error")
		}
	}
}

func TestArenaReuse(t *testing.T) {
	c := &T{}

	root := add(add(num.Int(1)), add(num.Int(2)), add(num.Int(3)))

	if _, err := c.reduce(root, &adder{t: t}); err != nil {
		t.Fatal(err)
	}

	if len(c.nodes) != 2 {
		t.Fatalf("expected 2 nodes in the arena, got %d", len(c.nodes))
	}
}
