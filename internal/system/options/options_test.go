// Released under an MIT license. See LICENSE.

package options_test

import (
	"testing"

	"github.com/michaelmacinnis/rlisp/internal/system/options"
)

func parse(t *testing.T, argv ...string) {
	t.Helper()

	if err := options.Parse(argv); err != nil {
		t.Fatalf("%v: %v", argv, err)
	}
}

func TestExpression(t *testing.T) {
	parse(t, "-e", "(+ 1 2)")

	if options.Expression() != "(+ 1 2)" {
		t.Fatalf("got expression %q", options.Expression())
	}

	if options.Interactive() || options.MCP() || options.Debug() {
		t.Fatal("unexpected mode")
	}
}

func TestFiles(t *testing.T) {
	parse(t, "-d", "-j", "session.db", "a.lisp", "b.lisp")

	fs := options.Files()
	if len(fs) != 2 || fs[0] != "a.lisp" || fs[1] != "b.lisp" {
		t.Fatalf("got files %v", fs)
	}

	if !options.Debug() || options.Journal() != "session.db" {
		t.Fatal("expected debug logging and a journal")
	}

	if options.Interactive() {
		t.Fatal("files are not interactive")
	}
}

func TestInvertInteractive(t *testing.T) {
	parse(t, "-i", "a.lisp")

	if !options.Interactive() {
		t.Fatal("-i should force interactive mode")
	}
}

func TestMCP(t *testing.T) {
	parse(t, "--mcp")

	if !options.MCP() || options.Interactive() {
		t.Fatal("expected MCP mode")
	}
}
