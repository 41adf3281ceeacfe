// Released under an MIT license. See LICENSE.

// Package history loads and saves the REPL's line history.
package history

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Name is the name of the history file in the user's home directory.
const Name = ".rlisp_history"

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	defer f.Close()

	if _, err = read(f); err != nil {
		return fmt.Errorf("history: %w", err)
	}

	return nil
}

// Save passes a newly created history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	if _, err = write(f); err != nil {
		f.Close()

		return fmt.Errorf("history: %w", err)
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return op(filepath.Join(home, Name))
}
