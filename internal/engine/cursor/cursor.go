// Released under an MIT license. See LICENSE.

// Package cursor reduces nested application forms innermost first without
// recursion. Each pending application is a node in an arena; a node's
// result is written into exactly the argument slot it came from.
package cursor

import (
	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
	"github.com/michaelmacinnis/rlisp/internal/common/type/form"
)

// Evaluator decides how each part of a form is reduced.
type Evaluator interface {
	// Apply applies f. Its arguments are already reduced if Descend(f).
	Apply(f *form.T) (cell.I, error)

	// Argument resolves an argument that the cursor does not descend into.
	Argument(c cell.I) (cell.I, error)

	// Descend is true if the arguments of f are evaluated before f is applied.
	Descend(f *form.T) bool
}

const none = -1

type node struct {
	args   []cell.I
	child  int
	depth  int
	form   *form.T
	next   int
	parent int
	slot   int
}

// T (cursor) is the arena of nodes for one reduction.
type T struct {
	free  []int
	nodes []node
}

// Reduce evaluates root using e.
func Reduce(root *form.T, e Evaluator) (cell.I, error) {
	if !e.Descend(root) {
		return e.Apply(root)
	}

	c := &T{}

	return c.reduce(root, e)
}

func (c *T) alloc(f *form.T, parent, slot int) int {
	nd := node{
		args:   append([]cell.I(nil), f.Args()...),
		child:  none,
		form:   f,
		parent: parent,
		slot:   slot,
	}

	if parent != none {
		nd.depth = c.nodes[parent].depth + 1
	}

	if n := len(c.free); n > 0 {
		i := c.free[n-1]
		c.free = c.free[:n-1]
		c.nodes[i] = nd

		return i
	}

	c.nodes = append(c.nodes, nd)

	return len(c.nodes) - 1
}

func (c *T) reduce(root *form.T, e Evaluator) (cell.I, error) {
	active := c.alloc(root, none, none)

	for {
		nd := &c.nodes[active]

		if nd.next < len(nd.args) {
			i := nd.next
			nd.next++

			a := nd.args[i]

			if form.Is(a) && marker.Of(a) == "" && e.Descend(form.To(a)) {
				child := c.alloc(form.To(a), active, i)
				c.nodes[active].child = child
				active = child

				continue
			}

			v, err := e.Argument(a)
			if err != nil {
				return nil, err
			}

			nd.args[i] = v

			continue
		}

		v, err := e.Apply(nd.form.WithArgs(nd.args))
		if err != nil {
			return nil, err
		}

		parent, slot := nd.parent, nd.slot
		c.release(active)

		if parent == none {
			return v, nil
		}

		c.nodes[parent].args[slot] = v
		c.nodes[parent].child = none
		active = parent
	}
}

// Nodes in the active chain that have no child. Always one while reducing.
func (c *T) leaves() int {
	n := 0

	for _, nd := range c.nodes {
		if nd.form != nil && nd.child == none {
			n++
		}
	}

	return n
}

func (c *T) release(i int) {
	c.nodes[i] = node{}
	c.free = append(c.free, i)
}
