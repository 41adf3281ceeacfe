// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping rlisp.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lisp
var script string //nolint:gochecknoglobals

// Script returns the prelude evaluated in the COMMON-LISP package at startup.
func Script() string {
	return script
}
