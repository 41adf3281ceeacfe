// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the rlisp language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/rlisp/internal/system/history"
)

// Prompts.
const (
	Continue = "  ... "
	Prompt   = "RLisp> "
)

// Run reads lines from the terminal and passes them to s until end of input.
func Run(s *Session) {
	cli := liner.NewLiner()
	defer cli.Close()

	if err := history.Load(cli.ReadHistory); err != nil {
		log.WithError(err).Warn("history not loaded")
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(s.Names(), line, pos)
	})

	for {
		prompt := Prompt
		if s.Incomplete() {
			prompt = Continue
		}

		line, err := cli.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			s.Reset()

			continue
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WithError(err).Warn("prompt failed")
			}

			break
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		s.Scan(line + "\n")
	}

	fmt.Println()

	if err := history.Save(cli.WriteHistory); err != nil {
		log.WithError(err).Warn("history not saved")
	}
}

// Stream passes every line in r to s. It returns false if any form failed
// or if r ended inside a form.
func Stream(s *Session, r io.Reader) bool {
	ok := true

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ok = s.Scan(scanner.Text()+"\n") && ok
	}

	if err := scanner.Err(); err != nil {
		s.report(err)

		return false
	}

	if s.Incomplete() {
		s.report(errors.New("end of input inside a form"))
		s.Reset()

		return false
	}

	return ok
}

// Complete the word ending at pos with the names that it prefixes. The
// position pos counts runes.
func complete(names []string, line string, pos int) (string, []string, string) {
	rs := []rune(line)
	head, tail := string(rs[:pos]), string(rs[pos:])

	start := strings.LastIndexAny(head, " \t\n()'`,\"") + 1
	word := head[start:]

	if word == "" {
		return head, nil, tail
	}

	prefix := strings.ToUpper(word)
	lower := word == strings.ToLower(word)

	var cs []string

	for _, n := range names {
		if !strings.HasPrefix(n, prefix) {
			continue
		}

		if lower {
			n = strings.ToLower(n)
		}

		cs = append(cs, n)
	}

	sort.Strings(cs)

	return head[:start], cs, tail
}
