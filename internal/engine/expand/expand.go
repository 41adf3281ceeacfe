// Released under an MIT license. See LICENSE.

// Package expand fills in backquote templates.
//
// Each node of a template is annotated with the backquotes and commas that
// precede it. A node is ready when its commas cancel every backquote that
// encloses it. Ready symbols and literals are replaced immediately. Ready
// forms are replaced by placeholders and evaluated, in order, once the
// structure of the result is complete.
package expand

import (
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/block"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/comma"
	"github.com/michaelmacinnis/rlisp/internal/common/type/form"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

// Evaluator evaluates the parts of a template marked for evaluation.
type Evaluator interface {
	Eval(c cell.I) (cell.I, error)
}

type stashed struct {
	code   cell.I
	splice bool
	value  cell.I
}

type expander struct {
	e     Evaluator
	order []string
	stash map[string]*stashed
}

// Template expands the template t.
func Template(t cell.I, e Evaluator) (cell.I, error) {
	x := &expander{e: e, stash: map[string]*stashed{}}

	a := comma.New(marker.Of(t), 0)
	if a.Splice {
		return nil, condition.Simplef(",@ after backquote in %s", t)
	}

	cs, err := x.node(t, 0)
	if err != nil {
		return nil, err
	}

	// A template with a ready root is a single value.
	c := cs[0]
	if !a.Ready() {
		c = marker.Strip(c)
	}

	for _, k := range x.order {
		s := x.stash[k]

		s.value, err = e.Eval(s.code)
		if err != nil {
			return nil, err
		}
	}

	if len(x.order) > 0 {
		log.WithField("forms", len(x.order)).Debug("template evaluated")
	}

	return x.substitute(c)
}

func (x *expander) node(c cell.I, inherited int) ([]cell.I, error) {
	a := comma.New(marker.Of(c), inherited)

	if a.Malformed {
		return nil, condition.Simplef("malformed comma in %s", c)
	}

	if a.Excess() {
		return nil, condition.Simplef("comma not inside a backquote")
	}

	if a.Ready() {
		return x.ready(marker.Strip(c), a.Splice)
	}

	var es []cell.I

	switch {
	case form.Is(c):
		f := form.To(c)
		es = append([]cell.I{f.Head()}, f.Args()...)
	case list.Is(c) && list.To(c).Len() > 0:
		es = list.To(c).Elements()
	default:
		return []cell.I{c}, nil
	}

	expanded := make([]cell.I, 0, len(es))

	for _, e := range es {
		cs, err := x.node(e, a.Net())
		if err != nil {
			return nil, err
		}

		expanded = append(expanded, cs...)
	}

	l := list.New(expanded...)
	if m := marker.Of(c); m != "" {
		l = list.To(l).WithMarks(m)
	}

	return []cell.I{l}, nil
}

func (x *expander) ready(c cell.I, splice bool) ([]cell.I, error) {
	if form.Is(c) {
		k := "#:G" + block.ID()

		x.order = append(x.order, k)
		x.stash[k] = &stashed{code: c, splice: splice}

		return []cell.I{sym.New(k)}, nil
	}

	v := c

	if sym.Is(c) {
		var err error

		v, err = x.e.Eval(c)
		if err != nil {
			return nil, err
		}
	}

	if !splice {
		return []cell.I{v}, nil
	}

	return elements(v)
}

// Placeholders are replaced in one pass. Substituted values are not rescanned.
func (x *expander) substitute(c cell.I) (cell.I, error) {
	if len(x.stash) == 0 {
		return c, nil
	}

	if sym.Is(c) {
		if s, ok := x.stash[sym.To(c).Text()]; ok {
			return s.value, nil
		}

		return c, nil
	}

	if !list.Is(c) || list.To(c).Len() == 0 {
		return c, nil
	}

	l := list.To(c)
	es := make([]cell.I, 0, l.Len())

	for _, e := range l.Elements() {
		if sym.Is(e) {
			if s, ok := x.stash[sym.To(e).Text()]; ok && s.splice {
				spliced, err := elements(s.value)
				if err != nil {
					return nil, err
				}

				es = append(es, spliced...)

				continue
			}
		}

		v, err := x.substitute(e)
		if err != nil {
			return nil, err
		}

		es = append(es, v)
	}

	r := list.New(es...)
	if l.Marks() != "" {
		r = list.To(r).WithMarks(l.Marks())
	}

	return r, nil
}

func elements(v cell.I) ([]cell.I, error) {
	if !list.Is(v) {
		return nil, condition.WrongType(v, "LIST")
	}

	return list.To(v).Elements(), nil
}
