// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all rlisp types.
package cell

// I (cell) is the basic unit of storage in rlisp.
type I interface {
	Equal(c I) bool
	Name() string
	String() string
}
