// Released under an MIT license. See LICENSE.

// Package form provides rlisp's application form type: a head symbol and
// the arguments it is applied to. Forms are the only cells that are
// evaluated as calls.
package form

import (
	"strings"

	"github.com/michaelmacinnis/rlisp/internal/common"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

const name = "form"

// T (form) is an application form.
type T struct {
	args  []cell.I
	head  cell.I
	marks string
}

type form = T

// New creates a form applying head to args.
func New(head cell.I, args ...cell.I) *T {
	return &form{args: args, head: head}
}

// Args returns the arguments of the form f. The slice must not be modified.
func (f *form) Args() []cell.I {
	return f.args
}

// Equal returns true if c is a form with an equal head and arguments.
func (f *form) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if !f.head.Equal(o.head) || len(f.args) != len(o.args) || f.marks != o.marks {
		return false
	}

	for i, a := range f.args {
		if !a.Equal(o.args[i]) {
			return false
		}
	}

	return true
}

// Head returns the head of the form f.
func (f *form) Head() cell.I {
	return f.head
}

// Marks returns the backquote and comma markers that preceded f.
func (f *form) Marks() string {
	return f.marks
}

// Name returns the type name for the form f.
func (f *form) Name() string {
	return name
}

// Operator returns the name of the head symbol of f.
func (f *form) Operator() string {
	if sym.Is(f.head) {
		return sym.To(f.head).Text()
	}

	return ""
}

// String returns the text representation of the form f.
func (f *form) String() string {
	s := f.marks + "(" + f.head.String()
	if len(f.args) > 0 {
		s += " " + common.Join(f.args, " ")
	}

	return s + ")"
}

// WithArgs returns a copy of f with args in place of its arguments.
func (f *form) WithArgs(args []cell.I) *T {
	return &form{args: args, head: f.head, marks: f.marks}
}

// WithMarks returns a copy of f preceded by marks.
func (f *form) WithMarks(marks string) cell.I {
	return &form{args: f.args, head: f.head, marks: marks}
}

// Code converts the literal list c into an application form, recursively.
// Lists whose head is not a symbol stay data.
func Code(c cell.I) cell.I {
	if !list.Is(c) {
		return c
	}

	l := list.To(c)
	es := l.Elements()

	if len(es) == 0 {
		return c
	}

	head := es[0]
	args := make([]cell.I, len(es)-1)

	for i, e := range es[1:] {
		args[i] = Code(e)
	}

	if Is(Code(head)) && To(Code(head)).Operator() == "LAMBDA" {
		args = append([]cell.I{Code(head)}, args...)
		head = sym.New("funcall")
	} else if !sym.Is(head) {
		return c
	}

	return &form{args: args, head: head, marks: l.Marks()}
}

// Data converts the form c into a literal list, recursively.
func Data(c cell.I) cell.I {
	switch {
	case Is(c):
		f := To(c)

		es := make([]cell.I, 0, len(f.args)+1)
		es = append(es, f.head)

		for _, a := range f.args {
			es = append(es, Data(a))
		}

		l := list.New(es...)
		if f.marks != "" {
			l = list.To(l).WithMarks(f.marks)
		}

		return l
	case list.Is(c):
		l := list.To(c)

		es := make([]cell.I, l.Len())
		for i, e := range l.Elements() {
			es[i] = Data(e)
		}

		d := list.New(es...)
		if l.Marks() != "" {
			d = list.To(d).WithMarks(l.Marks())
		}

		return d
	}

	return c
}

// Source returns text that reads back as c. The reader wraps a backquoted
// datum in (BACKQUOTE ...) so the wrapper is not written out.
func Source(c cell.I) string {
	var es []cell.I

	switch {
	case Is(c):
		f := To(c)
		es = append([]cell.I{f.head}, f.args...)
	case list.Is(c) && list.To(c).Len() > 0:
		es = list.To(c).Elements()
	default:
		return c.String()
	}

	if len(es) == 2 && sym.Is(es[0]) && sym.To(es[0]).Text() == "BACKQUOTE" && marker.Of(c) == "" {
		if m := marker.Of(es[1]); m != "" && m[0] == '`' {
			return Source(es[1])
		}
	}

	ss := make([]string, len(es))
	for i, e := range es {
		ss[i] = Source(e)
	}

	return marker.Of(c) + "(" + strings.Join(ss, " ") + ")"
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*form)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *form {
	if t, ok := c.(*form); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t form

	// The form type is a cell.
	_ = cell.I(&t)

	// The form type can be preceded by backquote and comma markers.
	_ = marker.I(&t)
}
