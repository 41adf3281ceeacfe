// Released under an MIT license. See LICENSE.

// Package env provides rlisp's environment: the package store, the chain
// of dynamic scope frames and the chain of active blocks.
package env

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/rlisp/internal/common/condition"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/block"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/frame"
	"github.com/michaelmacinnis/rlisp/internal/common/type/pkg"
	"github.com/michaelmacinnis/rlisp/internal/common/type/record"
	"github.com/michaelmacinnis/rlisp/internal/common/type/sym"
)

// Keywords seeded in the KEYWORD package.
//
//nolint:gochecknoglobals
var Keywords = []string{":COMPILE-TOPLEVEL", ":EXECUTE", ":LOAD-TOPLEVEL"}

// T (env) is an evaluation environment.
type T struct {
	blocks   []*block.T
	current  *pkg.T
	frame    *frame.T
	packages map[string]*pkg.T
}

type env = T

// New creates an environment with the standard packages. The user package
// is current.
func New() *env {
	e := &env{
		frame:    frame.New(nil, nil),
		packages: map[string]*pkg.T{},
	}

	for _, n := range []string{pkg.CommonLisp, pkg.CommonLispUser, pkg.Keyword} {
		e.packages[n] = pkg.New(n)
	}

	e.current = e.packages[pkg.CommonLispUser]

	kw := e.packages[pkg.Keyword]
	for _, k := range Keywords {
		kw.Intern(k).SetValue(sym.True)
	}

	return e
}

// Current returns the current package.
func (e *env) Current() *pkg.T {
	return e.current
}

// Define adds the record r to the current package.
func (e *env) Define(r *record.T) {
	e.current.Define(r)
}

// Intern returns the visible record for k, creating one in the current
// package if there is none.
func (e *env) Intern(k string) *record.T {
	if r := e.Lookup(k); r != nil {
		return r
	}

	return e.current.Intern(k)
}

// Lookup returns the visible record for k or nil. Keywords resolve in the
// keyword package. Other names resolve in the current package and then in
// the COMMON-LISP package.
func (e *env) Lookup(k string) *record.T {
	if strings.HasPrefix(k, ":") {
		return e.packages[pkg.Keyword].Lookup(k)
	}

	if r := e.current.Lookup(k); r != nil {
		return r
	}

	return e.packages[pkg.CommonLisp].Lookup(k)
}

// Names returns the sorted names of every visible symbol.
func (e *env) Names() []string {
	seen := map[string]bool{}

	for _, p := range []*pkg.T{e.packages[pkg.CommonLisp], e.current, e.packages[pkg.Keyword]} {
		for _, n := range p.Names() {
			seen[n] = true
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Package returns the package called n or nil.
func (e *env) Package(n string) *pkg.T {
	return e.packages[n]
}

// SetCurrent makes the package called n current.
func (e *env) SetCurrent(n string) error {
	p := e.packages[n]
	if p == nil {
		return condition.Simplef("package %s does not exist", n)
	}

	e.current = p

	return nil
}

// Value resolves k as a variable: the current dynamic bindings first, then
// the value of the visible symbol record.
func (e *env) Value(k string) (cell.I, bool) {
	if v, ok := e.frame.Resolve(k); ok {
		return v, true
	}

	if r := e.Lookup(k); r != nil {
		return r.Value()
	}

	return nil, false
}

// Replace installs a frame holding the current bindings and bindings.
func (e *env) Replace(bindings map[string]cell.I) {
	e.frame = frame.New(e.frame, bindings)

	log.WithFields(log.Fields{
		"bindings": len(bindings),
		"depth":    e.frames(),
	}).Debug("scope replaced")
}

// Release restores the frame replaced by the current frame. The toplevel
// frame is never dropped: releasing it resynchronizes it instead.
func (e *env) Release() {
	if p := e.frame.Previous(); p != nil {
		e.frame = p
	} else {
		e.frame = e.frame.Clone(nil)
	}

	log.WithField("depth", e.frames()).Debug("scope released")
}

// Toplevel is true when only the toplevel frame remains.
func (e *env) Toplevel() bool {
	return e.frame.Previous() == nil
}

// Depth returns the number of frames and the number of active blocks.
func (e *env) Depth() (frames, blocks int) {
	return e.frames(), len(e.blocks)
}

// Reset drops every frame but the toplevel and every active block.
func (e *env) Reset() {
	for !e.Toplevel() {
		e.frame = e.frame.Previous()
	}

	e.blocks = nil
}

func (e *env) frames() int {
	n := 0
	for f := e.frame; f != nil; f = f.Previous() {
		n++
	}

	return n
}

// Push makes b the innermost active block.
func (e *env) Push(b *block.T) {
	e.blocks = append(e.blocks, b)

	log.WithFields(log.Fields{
		"id":    b.ID(),
		"block": b.Label(),
		"depth": len(e.blocks),
	}).Debug("block entered")
}

// Pop removes the innermost active block.
func (e *env) Pop() {
	n := len(e.blocks) - 1
	if n < 0 {
		return
	}

	b := e.blocks[n]
	e.blocks = e.blocks[:n]

	log.WithFields(log.Fields{
		"id":    b.ID(),
		"block": b.Label(),
		"depth": n,
	}).Debug("block exited")
}

// Blocks returns the active blocks, outermost first.
func (e *env) Blocks() []*block.T {
	return e.blocks
}

// ByID returns the active block with the identifier id or nil.
func (e *env) ByID(id string) *block.T {
	for i := len(e.blocks) - 1; i >= 0; i-- {
		if e.blocks[i].ID() == id {
			return e.blocks[i]
		}
	}

	return nil
}

// Nearest returns the innermost active block that return-from can reach
// with name n or nil.
func (e *env) Nearest(n string) *block.T {
	for i := len(e.blocks) - 1; i >= 0; i-- {
		b := e.blocks[i]
		if b.Targetable() && b.Name() == n {
			return b
		}
	}

	return nil
}

// Function returns the name of the innermost active named function or "".
func (e *env) Function() string {
	for i := len(e.blocks) - 1; i >= 0; i-- {
		if e.blocks[i].Function() {
			return e.blocks[i].Name()
		}
	}

	return ""
}
