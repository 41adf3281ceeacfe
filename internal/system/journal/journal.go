// Released under an MIT license. See LICENSE.

// Package journal records top-level forms in a SQLite database. Forms
// that evaluated without error can be replayed to restore a session.
package journal

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Registers the sqlite3 driver.
	log "github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS forms (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT NOT NULL,
	source  TEXT NOT NULL,
	value   TEXT,
	failure TEXT,
	created TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// T (journal) is an open journal.
type T struct {
	db      *sql.DB
	session string
}

type journal = T

// Open opens, or creates, the journal at path.
func Open(path string) (*T, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, fmt.Errorf("journal: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("journal: %w", err)
	}

	j := &journal{db: db, session: uuid.NewString()}

	log.WithFields(log.Fields{
		"path":    path,
		"session": j.session,
	}).Debug("journal opened")

	return j, nil
}

// Close closes the journal.
func (j *journal) Close() error {
	log.WithField("session", j.session).Debug("journal closed")

	return j.db.Close()
}

// Record adds source and the outcome of evaluating it to the journal.
// Either value or failure is empty.
func (j *journal) Record(source, value, failure string) error {
	_, err := j.db.Exec(
		`INSERT INTO forms (session, source, value, failure) VALUES (?, ?, ?, ?)`,
		j.session, source, nullable(value), nullable(failure),
	)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}

	return nil
}

// Replay returns, in order, the source of every form that succeeded in an
// earlier session.
func (j *journal) Replay() ([]string, error) {
	rows, err := j.db.Query(
		`SELECT source FROM forms WHERE failure IS NULL AND session <> ? ORDER BY id`,
		j.session,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	defer rows.Close()

	var sources []string

	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("journal: %w", err)
		}

		sources = append(sources, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}

	log.WithFields(log.Fields{
		"forms":   len(sources),
		"session": j.session,
	}).Debug("journal replayed")

	return sources, nil
}

// Session returns the identifier for entries recorded by j.
func (j *journal) Session() string {
	return j.session
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}

	return s
}
