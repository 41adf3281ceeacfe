// Released under an MIT license. See LICENSE.

// Package printer renders rlisp values for display. A value that fits in
// the available width is written on one line. A list that does not fit
// is broken after its first element with the rest aligned beneath it.
package printer

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
	"github.com/michaelmacinnis/rlisp/internal/common/type/list"
)

// Fprint writes c to w in at most width columns where possible.
func Fprint(w io.Writer, c cell.I, width int) error {
	_, err := io.WriteString(w, Sprint(c, width)+"\n")

	return err
}

// Sprint returns c rendered in at most width columns where possible.
func Sprint(c cell.I, width int) string {
	var b strings.Builder

	layout(&b, c, 0, width)

	return b.String()
}

func layout(b *strings.Builder, c cell.I, column, width int) {
	s := c.String()
	if column+runewidth.StringWidth(s) <= width || !list.Is(c) || list.To(c).Len() < 2 {
		b.WriteString(s)

		return
	}

	open := marker.Of(c) + "("
	b.WriteString(open)

	column += runewidth.StringWidth(open)

	es := list.To(c).Elements()
	for i, e := range es {
		if i > 0 {
			b.WriteString("\n" + strings.Repeat(" ", column))
		}

		layout(b, e, column, width)
	}

	b.WriteString(")")
}
