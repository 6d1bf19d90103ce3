package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS entries (
			position   INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			day        TEXT NOT NULL,
			time_start TEXT NOT NULL,
			time_end   TEXT NOT NULL,
			location   TEXT NOT NULL DEFAULT '',
			UNIQUE(name, day, time_start)
		);

		CREATE INDEX IF NOT EXISTS idx_entries_day ON entries(day);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating entries table: %w", err)
	}

	return nil
}
