// Released under an MIT license. See LICENSE.

package journal_test

import (
	"path/filepath"
	"testing"

	"github.com/michaelmacinnis/rlisp/internal/system/journal"
)

func open(t *testing.T, path string) *journal.T {
	t.Helper()

	j, err := journal.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}

	return j
}

func TestReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	j := open(t, path)

	for _, r := range [][3]string{
		{"(DEFPARAMETER *X* 1)", "*X*", ""},
		{"(CAR 1)", "", "TYPE-ERROR expected-type: LIST datum: 1"},
		{"(DEFUN F (N) (+ N *X*))", "F", ""},
	} {
		if err := j.Record(r[0], r[1], r[2]); err != nil {
			t.Fatal(err)
		}
	}

	sources, err := j.Replay()
	if err != nil {
		t.Fatal(err)
	}

	if len(sources) != 0 {
		t.Fatalf("the current session should not be replayed: %v", sources)
	}

	if err := j.Close(); err != nil {
		t.Fatal(err)
	}

	next := open(t, path)
	defer next.Close()

	if next.Session() == j.Session() {
		t.Fatal("sessions should differ")
	}

	sources, err = next.Replay()
	if err != nil {
		t.Fatal(err)
	}

	if len(sources) != 2 || sources[0] != "(DEFPARAMETER *X* 1)" || sources[1] != "(DEFUN F (N) (+ N *X*))" {
		t.Fatalf("unexpected replay: %v", sources)
	}
}
