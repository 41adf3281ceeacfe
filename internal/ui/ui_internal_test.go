// Released under an MIT license. See LICENSE.

package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michaelmacinnis/rlisp/internal/engine"
)

type entry struct {
	source, value, failure string
}

type memory struct {
	entries []entry
	replay  []string
}

func (m *memory) Record(source, value, failure string) error {
	m.entries = append(m.entries, entry{source, value, failure})

	return nil
}

func (m *memory) Replay() ([]string, error) {
	return m.replay, nil
}

type harness struct {
	journal *memory
	out     *bytes.Buffer
	s       *Session
	t       *testing.T
}

func setup(t *testing.T) *harness {
	t.Helper()

	e, err := engine.New()
	if err != nil {
		t.Fatal(err)
	}

	h := &harness{journal: &memory{}, out: &bytes.Buffer{}, t: t}
	h.s = NewSession(e, h.journal, h.out, 80)

	return h
}

func (h *harness) output(want ...string) {
	h.t.Helper()

	got := strings.TrimSuffix(h.out.String(), "\n")
	if got != strings.Join(want, "\n") {
		h.t.Fatalf("got output %q, want %q", got, want)
	}

	h.out.Reset()
}

func TestScan(t *testing.T) {
	h := setup(t)

	if !h.s.Scan("(+ 1 2) (list 3\n") {
		t.Fatal("unexpected failure")
	}

	if !h.s.Incomplete() {
		t.Fatal("the list is not finished")
	}

	h.output("3")

	if !h.s.Scan("4)\n") {
		t.Fatal("unexpected failure")
	}

	h.output("(3 4)")
}

func TestScanContinuesAfterErrors(t *testing.T) {
	h := setup(t)

	if h.s.Scan("(car 1) (+ 1 1)\n") {
		t.Fatal("expected a failure")
	}

	h.output("TYPE-ERROR expected-type: LIST datum: 1", "2")

	if h.s.Scan(")\n") {
		t.Fatal("expected a parse error")
	}

	h.out.Reset()

	if !h.s.Scan("'ok\n") {
		t.Fatal("the session should recover")
	}

	h.output("OK")
}

func TestJournal(t *testing.T) {
	h := setup(t)

	h.s.Scan("(defmacro inc (x) `(+ ,x 1))\n")
	h.s.Scan("(inc nil)\n")

	es := h.journal.entries
	if len(es) != 2 {
		t.Fatalf("expected two entries, got %v", es)
	}

	if es[0].source != "(DEFMACRO INC (X) `(+ ,X 1))" || es[0].value != "INC" {
		t.Fatalf("unexpected entry %v", es[0])
	}

	if es[1].failure == "" || es[1].value != "" {
		t.Fatalf("expected a failure, got %v", es[1])
	}
}

func TestReplay(t *testing.T) {
	h := setup(t)

	h.journal.replay = []string{
		"(DEFMACRO INC (X) `(+ ,X 1))",
		"(CAR 1)",
		"(DEFPARAMETER *Y* (INC 41))",
	}

	if err := h.s.Replay(); err != nil {
		t.Fatal(err)
	}

	if len(h.journal.entries) != 0 {
		t.Fatal("replayed forms should not be recorded again")
	}

	vs, err := h.s.Evaluate("test", "*y*")
	if err != nil || len(vs) != 1 || vs[0] != "42" {
		t.Fatalf("got %v %v", vs, err)
	}
}

func TestEvaluate(t *testing.T) {
	h := setup(t)

	vs, err := h.s.Evaluate("test", "(defun sq (x) (* x x)) (sq 9)")
	if err != nil || len(vs) != 2 || vs[1] != "81" {
		t.Fatalf("got %v %v", vs, err)
	}

	vs, err = h.s.Evaluate("test", "(list 1) (list 2) (list 3)")
	if err != nil || strings.Join(vs, " ") != "(1) (2) (3)" {
		t.Fatalf("got %v %v", vs, err)
	}

	if _, err := h.s.Evaluate("test", "(sq"); err == nil {
		t.Fatal("expected an error for a partial form")
	}

	if h.s.Incomplete() {
		t.Fatal("evaluate should not touch the interactive reader")
	}
}

func TestStream(t *testing.T) {
	h := setup(t)

	if !Stream(h.s, strings.NewReader("(defparameter *a* 1)\n(+ *a*\n 2)\n")) {
		t.Fatal("unexpected failure")
	}

	h.output("*A*", "3")

	if Stream(h.s, strings.NewReader("(+ 1\n")) {
		t.Fatal("expected a failure for a partial form")
	}

	if h.s.Incomplete() {
		t.Fatal("the partial form should be discarded")
	}
}

func TestComplete(t *testing.T) {
	names := []string{"CAR", "CDR", "CONS", "CONCATENATE"}

	head, cs, tail := complete(names, "(con", 4)
	if head != "(" || tail != "" || strings.Join(cs, " ") != "concatenate cons" {
		t.Fatalf("got %q %v %q", head, cs, tail)
	}

	head, cs, tail = complete(names, "(list 'C x)", 8)
	if head != "(list '" || tail != " x)" || len(cs) != 4 || cs[0] != "CAR" {
		t.Fatalf("got %q %v %q", head, cs, tail)
	}

	if _, cs, _ = complete(names, "(", 1); cs != nil {
		t.Fatalf("expected no completions, got %v", cs)
	}
}
