// Package provenance keeps an audit log of every self-replacement attempt in
// SQLite. The log is diagnostic only: a nil *Store is a valid no-op sink, so
// a failed DB open never stops the daemon.
package provenance

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS replacement_attempts (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	generation_id  TEXT NOT NULL,
	iteration      INTEGER NOT NULL,
	stage          TEXT NOT NULL,
	decision       TEXT NOT NULL,
	reason         TEXT,
	config_json    TEXT,
	created_at     TEXT NOT NULL
);
`

// #endregion schema

// #region store
// Store manages the attempt log in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens the SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// #endregion store

// #region log-attempt
// LogAttempt writes one attempt row. Safe to call on a nil store.
func (s *Store) LogAttempt(e AttemptEntry) error {
	if s == nil {
		return nil
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO replacement_attempts (generation_id, iteration, stage, decision, reason, config_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.GenerationID,
		int64(e.Iteration),
		e.Stage,
		e.Decision,
		nullIfEmpty(e.Reason),
		nullIfEmpty(e.ConfigJSON),
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log attempt: %w", err)
	}
	return nil
}

// #endregion log-attempt

// #region recent
// Recent returns the most recent attempt rows, newest first.
func (s *Store) Recent(limit int) ([]AttemptEntry, error) {
	if s == nil {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT generation_id, iteration, stage, decision, reason, config_json, created_at
		 FROM replacement_attempts ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var entries []AttemptEntry
	for rows.Next() {
		var e AttemptEntry
		var iter int64
		var reason, configJSON sql.NullString
		var createdStr string

		if err := rows.Scan(&e.GenerationID, &iter, &e.Stage, &e.Decision, &reason, &configJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.Iteration = uint64(iter)
		if reason.Valid {
			e.Reason = reason.String
		}
		if configJSON.Valid {
			e.ConfigJSON = configJSON.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
