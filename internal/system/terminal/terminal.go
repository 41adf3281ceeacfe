// Released under an MIT license. See LICENSE.

// Package terminal reports the dimensions of the controlling terminal.
package terminal

// DefaultWidth is used when the width of the terminal cannot be determined.
const DefaultWidth = 80

// Width returns the number of columns of the terminal open on fd.
func Width(fd int) int {
	if w := columns(fd); w > 0 {
		return w
	}

	return DefaultWidth
}
