// Released under an MIT license. See LICENSE.

// Package num provides rlisp's number type.
package num

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/interface/marker"
	"github.com/nukata/goarith"
)

const name = "number"

// T (num) wraps a goarith.Number. Integers stay exact; floats are float64.
type T struct {
	marks string
	n     goarith.Number
}

type num = T

// Zero is the exact integer zero.
var Zero = Number(goarith.AsNumber(new(big.Int))) //nolint:gochecknoglobals

// Float creates a num from the float64 f.
func Float(f float64) cell.I {
	return Number(goarith.AsNumber(f))
}

// Int creates a num from the integer i.
func Int(i int64) cell.I {
	return Number(goarith.AsNumber(big.NewInt(i)))
}

// New creates a num from the text s, if s is a valid number.
// Integers are tried first (in any base Go accepts), then floats.
func New(s string) (cell.I, bool) {
	if !numeric(s) {
		return nil, false
	}

	z := new(big.Int)
	if _, ok := z.SetString(s, 0); ok {
		return Number(goarith.AsNumber(z)), true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}

	return nil, false
}

// Number wraps the goarith.Number n.
func Number(n goarith.Number) cell.I {
	return &num{n: n}
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.n.Cmp(To(c).n) == 0
}

// Float returns the value of n as a float64.
func (n *num) Float() float64 {
	f, err := strconv.ParseFloat(n.text(), 64)
	if err != nil {
		// Every goarith number prints as something ParseFloat accepts.
		panic(err.Error())
	}

	return f
}

// Marks returns the backquote and comma markers that preceded n.
func (n *num) Marks() string {
	return n.marks
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Number returns the wrapped goarith.Number.
func (n *num) Number() goarith.Number {
	return n.n
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.marks + n.text()
}

// WithMarks returns a copy of n preceded by marks.
func (n *num) WithMarks(marks string) cell.I {
	return &num{marks: marks, n: n.n}
}

// Zero returns true if n is equal to zero.
func (n *num) Zero() bool {
	return n.n.Cmp(To(Zero).n) == 0
}

func (n *num) text() string {
	s := fmt.Sprint(n.n)

	if reflect.ValueOf(n.n).Kind() == reflect.Float64 && !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}

	return s
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type can be preceded by backquote and comma markers.
	_ = marker.I(&t)
}

// Names like INF and NAN are symbols, not floats.
func numeric(s string) bool {
	s = strings.TrimLeft(s, "+-.")

	return s != "" && s[0] >= '0' && s[0] <= '9'
}
