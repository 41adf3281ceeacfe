// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for rlisp.
//
// The rlisp lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/rlisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/rlisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes   string   // Buffer being scanned.
	dropped int      // Bytes discarded before the start of the buffer.
	first   int      // Index of the current token's first byte.
	index   int      // Index of the current byte.
	queue   []string // Buffers waiting to be scanned.
	saved   action   // Escaped action.
	state   action   // Current action.

	source loc.T // Location of the current byte.
	start  loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.start = l.source
	l.state = skipWhitespace

	return l
}

// Pending is true when the lexer holds part of a token.
func (l *T) Pending() bool {
	l.gather()

	return l.first < len(l.bytes)
}

// Reset discards any buffered text and partial token.
func (l *T) Reset() {
	l.gather()

	l.dropped += len(l.bytes)
	l.bytes = ""
	l.first = 0
	l.index = 0
	l.saved = nil
	l.state = skipWhitespace
	l.start = l.source
	l.start.Offset = l.dropped
	l.tokens = nil
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()

		if len(l.tokens) > 0 {
			t := l.tokens[0]
			l.tokens = l.tokens[1:]

			return t
		}

		state := l.state(l)
		if state == nil {
			// Out of text. The current state resumes when there is more.
			if len(l.tokens) > 0 {
				continue
			}

			return nil
		}

		l.state = state
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if w == 0 {
		return
	}

	if r == '\n' {
		l.source.Line++
		l.source.Char = 1
	} else {
		l.source.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.start))
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	// Keep any partial token and prepend it to the new text.
	l.dropped += l.first
	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.index -= l.first
	l.first = 0
	l.queue = nil
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.source
	l.start.Offset = l.dropped + l.index
}

// T states.

func afterComma(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '@':
		l.accept(r, w)
		l.emit(token.CommaAt, l.Text())
	default:
		l.emit(',', l.Text())
	}

	return skipWhitespace
}

func afterHash(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '\'':
		l.accept(r, w)
		l.emit(token.Function, l.Text())

		return skipWhitespace
	}

	return scanAtom
}

func escapeNextCharacter(l *T) action {
	r := l.next()

	if r == eof {
		return nil
	}

	return l.resume()
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ', '"', '\'', '(', ')', ',', ';', '`':
			l.emit(token.Atom, l.Text())

			return skipWhitespace
		case '\\':
			l.accept(r, w)

			return l.escape(scanAtom, escapeNextCharacter)
		default:
			l.accept(r, w)
		}
	}
}

func scanString(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		case '\\':
			return l.escape(scanString, escapeNextCharacter)
		}
	}
}

func skipComment(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ':
			l.accept(r, w)
			l.skip()

			continue
		}

		l.accept(r, w)

		switch r {
		case '\'', '(', ')', '`':
			l.emit(r, l.Text())

			continue
		case '"':
			return scanString
		case '#':
			return afterHash
		case ',':
			return afterComma
		case ';':
			return skipComment
		}

		return scanAtom
	}
}
