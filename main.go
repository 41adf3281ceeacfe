// Released under an MIT license. See LICENSE.

// Rlisp is a small Lisp with Common Lisp flavored syntax, dynamic scope,
// named blocks, macros and backquote templates.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/rlisp/internal/engine"
	"github.com/michaelmacinnis/rlisp/internal/system/journal"
	"github.com/michaelmacinnis/rlisp/internal/system/mcp"
	"github.com/michaelmacinnis/rlisp/internal/system/options"
	"github.com/michaelmacinnis/rlisp/internal/system/terminal"
	"github.com/michaelmacinnis/rlisp/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := options.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 2 //nolint:gomnd
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	if options.Debug() {
		log.SetLevel(log.DebugLevel)
	}

	e, err := engine.New()
	if err != nil {
		log.WithError(err).Error("boot failed")

		return 1
	}

	var j ui.Journal

	if path := options.Journal(); path != "" {
		jt, err := journal.Open(path)
		if err != nil {
			log.WithError(err).Error("journal not opened")

			return 1
		}
		defer jt.Close()

		j = jt
	}

	fd := int(os.Stdout.Fd())
	if options.Interactive() {
		fd = options.Terminal()
	}

	s := ui.NewSession(e, j, os.Stdout, terminal.Width(fd))

	if err := s.Replay(); err != nil {
		log.WithError(err).Warn("journal not replayed")
	}

	switch {
	case options.MCP():
		if err := mcp.New(s).Serve(options.Version); err != nil {
			log.WithError(err).Error("mcp server failed")

			return 1
		}
	case options.Expression() != "":
		vs, err := s.Evaluate("-e", options.Expression())
		for _, v := range vs {
			fmt.Println(v)
		}

		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return 1
		}
	case len(options.Files()) > 0:
		return files(s, options.Files())
	case options.Interactive():
		ui.Run(s)
	default:
		if !ui.Stream(s, os.Stdin) {
			return 1
		}
	}

	return 0
}

func files(s *ui.Session, paths []string) int {
	status := 0

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return 1
		}

		if !ui.Stream(s, f) {
			status = 1
		}

		f.Close()
	}

	return status
}
