// Released under an MIT license. See LICENSE.

package engine

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
)

type harness struct {
	e *T
	t *testing.T
}

func setup(t *testing.T) *harness {
	t.Helper()

	e, err := New()
	if err != nil {
		t.Fatalf("boot failed: %v", err)
	}

	return &harness{e: e, t: t}
}

// Evaluate text and compare the value of its last form with want.
func (h *harness) eval(text, want string) {
	h.t.Helper()

	vs, err := h.e.Evaluate("test", text)
	if err != nil {
		h.t.Fatalf("%s: %v", text, err)
	}

	if len(vs) == 0 {
		h.t.Fatalf("%s: no value", text)
	}

	if got := vs[len(vs)-1].String(); got != want {
		h.t.Fatalf("%s: got %s, want %s", text, got, want)
	}

	h.balanced(text)
}

func (h *harness) fail(text string, kind condition.Kind) error {
	h.t.Helper()

	_, err := h.e.Evaluate("test", text)
	if !condition.Is(err, kind) {
		h.t.Fatalf("%s: expected %s, got %v", text, kind, err)
	}

	h.balanced(text)

	return err
}

func (h *harness) balanced(text string) {
	h.t.Helper()

	if frames, blocks := h.e.env.Depth(); frames != 1 || blocks != 0 {
		h.t.Fatalf("%s: left %d frames and %d blocks", text, frames, blocks)
	}
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.eval("(+ 1 2 3)", "6")
	h.eval("(* 2 (+ 3 4))", "14")
	h.eval("(- 5)", "-5")
	h.eval("(- 10 (1+ 2))", "7")
	h.eval("(/ 4)", "0.25")
	h.eval("(+ 1 \"2.5\")", "3.5")

	h.fail("(/ 1 0)", condition.DivisionByZero)
	h.fail("(+ 1 \"two\")", condition.ParseFloat)
	h.fail("(+ 1 nil)", condition.Type)
}

func TestBlocks(t *testing.T) {
	h := setup(t)

	h.eval("(block outer (return-from outer 1) 2)", "1")
	h.eval("(block a (block a (return-from a 1)) 2)", "2")
	h.eval("(block a 1 (return-from a 2) 3)", "2")
	h.eval("(block a (block b (return-from a 1) 2) 3)", "1")
	h.eval("(block a (block a (return-from a 1) 2) 3)", "3")
	h.eval("(block a (return-from a))", "NIL")
	h.eval("(block a)", "NIL")
	h.eval("(block nil (return-from nil 5) 6)", "5")
	h.eval("(block nil (block a (return-from nil 1)) 2)", "1")

	h.fail("(block 1 2)", condition.Block)
	h.fail("(return-from nowhere 1)", condition.ReturnFrom)
}

func TestReturnFromCheckedBeforeBody(t *testing.T) {
	h := setup(t)

	h.eval("(defparameter *n* 0)", "*N*")
	h.fail("(block a (defparameter *n* 1) (return-from b 2))", condition.ReturnFrom)
	h.eval("*n*", "0")
}

func TestReturnFromFunction(t *testing.T) {
	h := setup(t)

	h.eval("(defun f (x) (return-from f (* x 2)) x)", "F")
	h.eval("(f 21)", "42")
}

func TestErrorInsideBlock(t *testing.T) {
	h := setup(t)

	h.fail("(block a (progv '(x) '(1) (car 1)))", condition.Type)
	h.fail("x", condition.UnboundVariable)
	h.eval("(block a 7)", "7")
}

func TestBackquote(t *testing.T) {
	h := setup(t)

	h.eval("`(+ 1 ,(+ 2 3))", "(+ 1 5)")
	h.eval("`(a b)", "(A B)")
	h.eval("(defparameter *l* '(1 2))", "*L*")
	h.eval("`(a ,@*l* b)", "(A 1 2 B)")
	h.eval("`(a ,@(list 1 2) b)", "(A 1 2 B)")
	h.eval("(eval `(+ 1 ,(+ 2 3)))", "6")

	err := h.fail(",x", condition.Simple)
	if !strings.Contains(err.Error(), "comma not inside a backquote") {
		t.Fatalf("unexpected message: %v", err)
	}

	h.fail("(+ 1 ,x)", condition.Simple)
}

func TestGlobals(t *testing.T) {
	h := setup(t)

	h.eval("(defparameter *x* 1)", "*X*")
	h.eval("(defparameter *x* 2)", "*X*")
	h.eval("*x*", "2")

	h.eval("(defvar *y* 1)", "*Y*")
	h.eval("(defvar *y* (car 1))", "*Y*")
	h.eval("*y*", "1")

	h.eval("(defvar *z* 3 \"A number.\")", "*Z*")
	h.eval("(symbol-value '*z*)", "3")

	h.fail("(defparameter t 1)", condition.Simple)
	h.fail("(defvar :k 1)", condition.Simple)
	h.fail("*w*", condition.UnboundVariable)

	d, err := h.e.Describe("*z*")
	if err != nil || !strings.Contains(d, "Documentation: A number.") {
		t.Fatalf("describe: %q %v", d, err)
	}
}

func TestFunctions(t *testing.T) {
	h := setup(t)

	h.eval("(defun f (x) (+ x 1))", "F")
	h.eval("(f 41)", "42")
	h.eval("(identity 'a)", "A")
	h.eval("(second '(1 2 3))", "2")
	h.eval("((lambda (x y) (list y x)) 1 2)", "(2 1)")
	h.eval("(defun g (&rest xs) xs)", "G")
	h.eval("(g 1 2 3)", "(1 2 3)")
	h.eval("(g)", "NIL")

	h.fail("(f)", condition.SimpleProgram)
	h.fail("(f 1 2)", condition.SimpleProgram)
}

func TestDynamicScope(t *testing.T) {
	h := setup(t)

	h.eval("(defun get-v () v)", "GET-V")
	h.eval("(defun get-v2 () x)", "GET-V2")
	h.eval("(progv '(v) '(3) (get-v))", "3")
	h.eval("(progv '(a b) '(1) (list a b))", "(1 NIL)")
	h.eval("(block a (progv '(x) '(7) (return-from a x)))", "7")
	h.eval("(block a (progv '(x) '(7) (block b (return-from a (get-v2)))))", "7")

	h.fail("v", condition.UnboundVariable)
	h.fail("(get-v)", condition.UnboundVariable)
	h.fail("x", condition.UnboundVariable)
}

func TestMacros(t *testing.T) {
	h := setup(t)

	h.eval("(defmacro inc (x) `(+ ,x 1))", "INC")
	h.eval("(inc 5)", "6")
	h.eval("(+ 1 (inc 5))", "7")
	h.eval("(inc 41)", "42")
	h.eval("(list (inc 41))", "(42)")
	h.eval("(macroexpand-1 '(inc 5))", "(+ 5 1)")
	h.eval("(eval '(inc 2))", "3")

	h.fail("(funcall 'inc 1)", condition.UndefinedFunction)
	h.fail("#'inc", condition.UndefinedFunction)
}

func TestFuncall(t *testing.T) {
	h := setup(t)

	h.eval("(funcall #'car '(1 2))", "1")
	h.eval("(funcall 'cons 1 '(2))", "(1 2)")
	h.eval("(funcall (lambda (x) (* x x)) 3)", "9")

	h.fail("(funcall 'quote 1)", condition.UndefinedFunction)
	h.fail("(funcall 1 2)", condition.Type)
}

func TestSymbols(t *testing.T) {
	h := setup(t)

	h.eval("(symbol-package 'car)", `#<PACKAGE "COMMON-LISP">`)
	h.eval("(defun f () 1)", "F")
	h.eval("(symbol-package 'f)", `#<PACKAGE "COMMON-LISP-USER">`)
	h.eval(":key", ":KEY")
	h.eval("(symbol-function 'car)", "#<FUNCTION CAR>")

	vs, err := h.e.Evaluate("test", `(apropos-list "cdr")`)
	if err != nil || !strings.Contains(vs[0].String(), "CDR") {
		t.Fatalf("apropos-list: %v %v", vs, err)
	}
}

func TestUndefined(t *testing.T) {
	h := setup(t)

	err := h.fail("(secnd '(1 2))", condition.UndefinedFunction)
	if !strings.Contains(err.Error(), "did you mean SECOND?") {
		t.Fatalf("no suggestion: %v", err)
	}
}

func TestEvaluateIncomplete(t *testing.T) {
	h := setup(t)

	h.fail("(+ 1", condition.Simple)
	h.fail(")", condition.Parse)
}
