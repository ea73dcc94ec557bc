package store

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS gardens (
			name       TEXT PRIMARY KEY,
			width      INTEGER NOT NULL CHECK(width > 0),
			height     INTEGER NOT NULL CHECK(height > 0),
			document   TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating gardens table: %w", err)
	}

	return nil
}
