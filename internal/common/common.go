// Released under an MIT license. See LICENSE.

// Package common provides helpers shared by the rlisp types.
package common

import (
	"strings"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
)

// Join returns the string representations of cs separated by sep.
func Join(cs []cell.I, sep string) string {
	ss := make([]string, len(cs))

	for i, c := range cs {
		ss[i] = c.String()
	}

	return strings.Join(ss, sep)
}
