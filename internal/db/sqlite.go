// Package db provides SQLite storage for the timetable.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/classgrid/internal/schedule"
)

// SQLite implements schedule.Store using SQLite.
type SQLite struct {
	db     *sql.DB
	logger *zap.Logger
}

// New opens (creating if needed) the database at path and runs migrations.
// The parent directory is created when missing.
func New(path string, logger *zap.Logger) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Load returns all saved entries in the order they were saved.
func (s *SQLite) Load(ctx context.Context) ([]schedule.Entry, error) {
	query := `
		SELECT name, day, time_start, time_end, location
		FROM entries
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []schedule.Entry
	for rows.Next() {
		var (
			e   schedule.Entry
			day string
		)
		if err := rows.Scan(&e.Name, &day, &e.TimeStart, &e.TimeEnd, &e.Location); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Day = schedule.Day(day)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	s.logger.Debug("loaded timetable", zap.Int("entries", len(entries)))
	return entries, nil
}

// Save atomically replaces the saved timetable with entries.
// Entries sharing an identity key are rejected by the unique index.
func (s *SQLite) Save(ctx context.Context, entries []schedule.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}

	query := `
		INSERT INTO entries (position, name, day, time_start, time_end, location)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, i, e.Name, string(e.Day), e.TimeStart, e.TimeEnd, e.Location); err != nil {
			return fmt.Errorf("inserting entry %s: %w", e.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	s.logger.Debug("saved timetable", zap.Int("entries", len(entries)))
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
