// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed rlisp code.
package engine

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/rlisp/internal/common/type/env"
	"github.com/michaelmacinnis/rlisp/internal/common/type/pkg"
	"github.com/michaelmacinnis/rlisp/internal/engine/boot"
	"github.com/michaelmacinnis/rlisp/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating rlisp code.
type T struct {
	env      *env.T
	handlers map[string]handler
}

// New creates a new T with the standard packages and the prelude loaded.
func New() (*T, error) {
	e := &T{
		env:      env.New(),
		handlers: handlers(),
	}

	cl := e.env.Package(pkg.CommonLisp)
	for name, h := range e.handlers {
		cl.Intern(name).SetFunction(builtin.New(name, !h.evaluated), false)
	}

	if err := e.env.SetCurrent(pkg.CommonLisp); err != nil {
		return nil, err
	}

	_, err := e.Evaluate("boot", boot.Script())
	if err != nil {
		return nil, err
	}

	if err := e.env.SetCurrent(pkg.CommonLispUser); err != nil {
		return nil, err
	}

	log.WithField("symbols", len(e.Names())).Debug("engine booted")

	return e, nil
}

// Evaluate reads every form in text and evaluates each at the toplevel.
// It stops at the first error and returns the values produced so far.
func (e *T) Evaluate(name, text string) ([]cell.I, error) {
	r := reader.New(name)

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	cs, err := r.Scan(text)
	if err != nil {
		return nil, err
	}

	if r.Incomplete() {
		return nil, errIncomplete(name)
	}

	vs := make([]cell.I, 0, len(cs))

	for _, c := range cs {
		v, err := e.Toplevel(c)
		if err != nil {
			return vs, err
		}

		vs = append(vs, v)
	}

	return vs, nil
}

// Describe returns a description of the symbol called name.
func (e *T) Describe(name string) (string, error) {
	name = strings.ToUpper(name)

	r := e.env.Lookup(name)
	if r == nil {
		return "", condition.Unbound(name)
	}

	lines := []string{name + " is a symbol in the " + r.Home() + " package."}

	if fn := r.Function(); fn != nil {
		lines = append(lines, "Function: "+fn.String())
	}

	if v, ok := r.Value(); ok {
		lines = append(lines, "Value: "+v.String())
	}

	if d := r.Doc(); d != "" {
		lines = append(lines, "Documentation: "+d)
	}

	return strings.Join(lines, "\n"), nil
}

// Names returns the sorted names of every visible symbol.
func (e *T) Names() []string {
	return e.env.Names()
}

// Toplevel configures and evaluates the top-level form c. Any scope or
// block left active afterwards is logged and discarded.
func (e *T) Toplevel(c cell.I) (cell.I, error) {
	defer e.check()

	c, err := e.Configure(c)
	if err != nil {
		return nil, err
	}

	return e.Eval(c)
}

func (e *T) check() {
	frames, blocks := e.env.Depth()
	if frames == 1 && blocks == 0 {
		return
	}

	log.WithFields(log.Fields{
		"blocks": blocks,
		"frames": frames,
	}).Warn("scope leaked past the toplevel")

	e.env.Reset()
}
