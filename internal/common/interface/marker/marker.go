// Released under an MIT license. See LICENSE.

// Package marker defines the interface for cells that can carry the
// backquote and comma markers that preceded them in a template.
package marker

import (
	"strings"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
)

// I (marker) is any cell that records a marker sequence such as "`", ",@" or "`,,".
type I interface {
	Marks() string
	WithMarks(marks string) cell.I
}

// Of returns the marker sequence for c or "" if c cannot carry markers.
func Of(c cell.I) string {
	if m, ok := c.(I); ok {
		return m.Marks()
	}

	return ""
}

// Commas returns true if c is preceded by at least one comma.
func Commas(c cell.I) bool {
	return strings.ContainsRune(Of(c), ',')
}

// Strip returns c without any markers.
func Strip(c cell.I) cell.I {
	if m, ok := c.(I); ok && m.Marks() != "" {
		return m.WithMarks("")
	}

	return c
}
