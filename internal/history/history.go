// Package history persists oracle decisions in SQLite so run tallies
// survive across sessions.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tkz/chaoracle"
)

// Store owns the decision log database. Not safe for concurrent use from
// multiple processes; database/sql serializes access within one.
type Store struct {
	db *sql.DB
}

// Open opens the decision log at path, creating the schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS decisions (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		decision INTEGER NOT NULL,
		raw_value REAL NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Record stores one decision under the given session and returns its id.
func (s *Store) Record(sessionID string, r chaoracle.Result) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO decisions (id, session_id, decision, raw_value, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, sessionID, r.Decision, r.RawValue, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("record decision: %w", err)
	}
	return id, nil
}

// Tally summarizes recorded decisions.
type Tally struct {
	Runs int
	Yes  int
	No   int
}

// Tally counts decisions for one session, or for every session when
// sessionID is empty.
func (s *Store) Tally(sessionID string) (Tally, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(decision), 0) FROM decisions`
	var args []any
	if sessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, sessionID)
	}

	var t Tally
	if err := s.db.QueryRow(query, args...).Scan(&t.Runs, &t.Yes); err != nil {
		return Tally{}, fmt.Errorf("tally decisions: %w", err)
	}
	t.No = t.Runs - t.Yes
	return t, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
