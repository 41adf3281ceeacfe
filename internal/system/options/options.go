// Released under an MIT license. See LICENSE.

// Package options parses rlisp's command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by -v.
const Version = "rlisp 0.1.0"

//nolint:gochecknoglobals
var (
	debug       bool
	expression  string
	files       []string
	interactive bool
	journal     string
	mcp         bool
	terminal    int
	usage       = `rlisp

Usage:
  rlisp [-di] [-j JOURNAL] [-e EXPR | FILE...]
  rlisp [-d] [-j JOURNAL] --mcp
  rlisp -h
  rlisp -v

Arguments:
  FILE  Path to an rlisp source file. Evaluated in order.

Options:
  -d, --debug                Log debugging information to stderr.
  -e, --eval=EXPR            Evaluate EXPR and print its value.
  -i, --interactive          Invert interactive mode.
  -j, --journal=JOURNAL      Record every top-level form in a SQLite journal
                             and replay it at startup.
  --mcp                      Serve evaluation tools over stdio.
  -h, --help                 Display this help.
  -v, --version              Print rlisp version.

If rlisp's stdin is a TTY and it was invoked with no files and no expression,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Debug is true if debug logging was requested.
func Debug() bool {
	return debug
}

// Expression returns the text passed with -e, if any.
func Expression() string {
	return expression
}

// Files returns the source files named on the command line.
func Files() []string {
	return files
}

// Interactive is true if rlisp should run a REPL.
func Interactive() bool {
	return interactive
}

// Journal returns the path of the journal database, if any.
func Journal() string {
	return journal
}

// MCP is true if rlisp should serve MCP requests on stdin and stdout.
func MCP() bool {
	return mcp
}

// Parse parses argv, the command line without the program name.
func Parse(argv []string) error {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}

	debug, _ = opts.Bool("--debug")
	expression, _ = opts.String("--eval")
	journal, _ = opts.String("--journal")
	mcp, _ = opts.Bool("--mcp")

	files, _ = opts["FILE"].([]string)

	terminal = int(os.Stdin.Fd())

	interactive = expression == "" && len(files) == 0 && !mcp &&
		isatty.IsTerminal(os.Stdin.Fd())

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}

// Terminal returns the file descriptor of the controlling terminal.
func Terminal() int {
	return terminal
}
