// Released under an MIT license. See LICENSE.

// Package comma provides the backquote and comma annotation computed for
// each node of a template.
package comma

import (
	"strings"
)

// T (comma) counts the markers that precede a template node.
type T struct {
	Commas    int  // Commas in the node's own markers.
	Elem      int  // Backquotes in the node's own markers.
	List      int  // Net backquotes inherited from enclosing compounds.
	Malformed bool // An @ without a comma or anything after ,@.
	Splice    bool // The node ends in ,@.
}

// New annotates the marker sequence marks for a node that inherits list
// backquotes from its enclosing compounds.
func New(marks string, list int) *T {
	t := &T{List: list}

	prev := rune(0)

	for _, r := range marks {
		if t.Splice {
			t.Malformed = true
		}

		switch r {
		case '`':
			t.Elem++
		case ',':
			t.Commas++
		case '@':
			if prev != ',' {
				t.Malformed = true
			}

			t.Splice = true
		}

		prev = r
	}

	return t
}

// Excess is true when there are more commas than enclosing backquotes.
func (t *T) Excess() bool {
	return t.Commas > t.Elem+t.List
}

// Net is the backquote count inherited by the node's children.
func (t *T) Net() int {
	return t.Elem + t.List - t.Commas
}

// Ready is true when the node's commas cancel every enclosing backquote.
func (t *T) Ready() bool {
	return t.Commas > 0 && t.Commas == t.Elem+t.List
}

// Trim removes backquote and comma markers from s.
func Trim(s string) string {
	return strings.TrimLeft(s, "`,@")
}
