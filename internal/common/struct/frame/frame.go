// Released under an MIT license. See LICENSE.

// Package frame provides rlisp's dynamic scope frame type.
package frame

import (
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/hash"
)

// T (frame) is a set of dynamic bindings and the frame it replaced.
type T struct {
	bindings *hash.T
	previous *frame
}

type frame = T

// New creates a frame holding a copy of the bindings visible in p
// overlaid with bindings. The frame p becomes the previous frame.
func New(p *frame, bindings map[string]cell.I) *frame {
	f := &frame{previous: p}

	if p != nil {
		f.bindings = p.bindings.Copy()
	} else {
		f.bindings = hash.New()
	}

	for k, v := range bindings {
		f.bindings.Set(k, v)
	}

	return f
}

// Clone creates a copy of f that replaces p.
func (f *frame) Clone(p *frame) *frame {
	return &frame{bindings: f.bindings.Copy(), previous: p}
}

// Names returns the sorted names bound in f.
func (f *frame) Names() []string {
	return f.bindings.Keys()
}

// Previous returns the previous frame.
func (f *frame) Previous() *frame {
	return f.previous
}

// Resolve looks up the dynamic binding for k.
func (f *frame) Resolve(k string) (cell.I, bool) {
	if f == nil {
		return nil, false
	}

	return f.bindings.Get(k)
}

// Size returns the number of bindings in f.
func (f *frame) Size() int {
	return f.bindings.Size()
}
