// Released under an MIT license. See LICENSE.

package history_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/michaelmacinnis/rlisp/internal/system/history"
)

func TestRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var b bytes.Buffer

	err := history.Load(func(r io.Reader) (int, error) {
		t.Fatal("there should be no history yet")

		return 0, nil
	})
	if err != nil {
		t.Fatalf("loading missing history: %v", err)
	}

	err = history.Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "(+ 1 2)\n")
	})
	if err != nil {
		t.Fatalf("saving history: %v", err)
	}

	err = history.Load(func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)

		return int(n), err
	})
	if err != nil {
		t.Fatalf("loading history: %v", err)
	}

	if b.String() != "(+ 1 2)\n" {
		t.Fatalf("got %q", b.String())
	}
}
