// Released under an MIT license. See LICENSE.

package ui

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/rlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/rlisp/internal/common/type/form"
	"github.com/michaelmacinnis/rlisp/internal/engine"
	"github.com/michaelmacinnis/rlisp/internal/printer"
	"github.com/michaelmacinnis/rlisp/internal/reader"
)

// Journal records top-level forms and returns those worth replaying.
type Journal interface {
	Record(source, value, failure string) error
	Replay() ([]string, error)
}

// Session evaluates top-level forms and reports their values.
type Session struct {
	engine  *engine.T
	journal Journal
	out     io.Writer
	reader  *reader.T
	width   int
}

// NewSession creates a session writing to out in at most width columns.
// The journal j may be nil.
func NewSession(e *engine.T, j Journal, out io.Writer, width int) *Session {
	return &Session{
		engine:  e,
		journal: j,
		out:     out,
		reader:  reader.New("rlisp"),
		width:   width,
	}
}

// Describe returns a description of the symbol called name.
func (s *Session) Describe(name string) (string, error) {
	return s.engine.Describe(name)
}

// Evaluate evaluates every form in text and returns their rendered values.
// It stops at the first error.
func (s *Session) Evaluate(name, text string) ([]string, error) {
	r := reader.New(name)

	cs, err := r.Scan(text + "\n")
	if err != nil {
		return nil, err
	}

	if r.Incomplete() {
		return nil, fmt.Errorf("%s: end of input inside a form", name)
	}

	vs := make([]string, 0, len(cs))

	for _, c := range cs {
		v, err := s.toplevel(c)
		if err != nil {
			return vs, err
		}

		vs = append(vs, printer.Sprint(v, s.width))
	}

	return vs, nil
}

// Incomplete is true when the session holds part of a form.
func (s *Session) Incomplete() bool {
	return s.reader.Incomplete()
}

// Names returns the names of every visible symbol.
func (s *Session) Names() []string {
	return s.engine.Names()
}

// Replay evaluates the forms recorded by earlier sessions. A form that
// now fails is logged and skipped.
func (s *Session) Replay() error {
	if s.journal == nil {
		return nil
	}

	sources, err := s.journal.Replay()
	if err != nil {
		return err
	}

	for _, source := range sources {
		if _, err := s.engine.Evaluate("journal", source); err != nil {
			log.WithError(err).WithField("source", source).Warn("replay failed")
		}
	}

	return nil
}

// Reset discards any partial form.
func (s *Session) Reset() {
	s.reader.Reset()
}

// Scan reads line and evaluates every form it completes, writing each
// value or error. It returns false if anything failed.
func (s *Session) Scan(line string) bool {
	cs, err := s.reader.Scan(line)

	ok := true

	for _, c := range cs {
		v, err := s.toplevel(c)
		if err != nil {
			s.report(err)

			ok = false

			continue
		}

		if err := printer.Fprint(s.out, v, s.width); err != nil {
			log.WithError(err).Warn("write failed")
		}
	}

	if err != nil {
		s.report(err)

		ok = false
	}

	return ok
}

func (s *Session) report(err error) {
	fmt.Fprintln(s.out, err.Error())
}

func (s *Session) toplevel(c cell.I) (cell.I, error) {
	v, err := s.engine.Toplevel(c)

	if s.journal != nil {
		value, failure := "", ""
		if err != nil {
			failure = err.Error()
		} else {
			value = v.String()
		}

		if jerr := s.journal.Record(form.Source(c), value, failure); jerr != nil {
			log.WithError(jerr).Warn("journal write failed")
		}
	}

	return v, err
}
