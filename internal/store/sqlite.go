// Package store provides local SQLite persistence for gardens.
//
// Each garden is stored as one row holding the full JSON document, keyed by
// name. Reads rehydrate the document; writes replace it wholesale, matching
// the last-write-wins semantics of the remote API.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

// SQLite implements garden.Store using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Create adds a new empty garden.
// Returns ErrGardenExists if a garden with that name is already stored.
func (s *SQLite) Create(ctx context.Context, name string, width, height int) (*garden.Garden, error) {
	g, err := garden.New(name, width, height)
	if err != nil {
		return nil, err
	}

	var exists int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gardens WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking garden: %w", err)
	}
	if exists > 0 {
		return nil, fmt.Errorf("%w: %q", garden.ErrGardenExists, name)
	}

	doc, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encoding garden: %w", err)
	}

	query := `INSERT INTO gardens (name, width, height, document) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, g.Name, g.Width, g.Height, string(doc)); err != nil {
		return nil, fmt.Errorf("inserting garden: %w", err)
	}

	return g, nil
}

// Get retrieves a garden by name.
// Returns ErrUnknownGarden if no garden with that name is stored.
func (s *SQLite) Get(ctx context.Context, name string) (*garden.Garden, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM gardens WHERE name = ?`, name).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w %q", garden.ErrUnknownGarden, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying garden: %w", err)
	}

	var g garden.Garden
	if err := json.Unmarshal([]byte(doc), &g); err != nil {
		return nil, fmt.Errorf("decoding garden: %w", err)
	}
	return &g, nil
}

// List returns the names of all stored gardens, sorted.
func (s *SQLite) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM gardens ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing gardens: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning garden name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gardens: %w", err)
	}

	return names, nil
}

// Put replaces the stored document for g.
// Returns ErrUnknownGarden if the garden was never created.
func (s *SQLite) Put(ctx context.Context, g *garden.Garden) error {
	if err := g.Validate(); err != nil {
		return err
	}

	doc, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encoding garden: %w", err)
	}

	query := `UPDATE gardens SET width = ?, height = ?, document = ? WHERE name = ?`
	result, err := s.db.ExecContext(ctx, query, g.Width, g.Height, string(doc), g.Name)
	if err != nil {
		return fmt.Errorf("updating garden: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w %q", garden.ErrUnknownGarden, g.Name)
	}

	return nil
}

// Delete removes a garden by name.
// Returns ErrUnknownGarden if no garden with that name is stored.
func (s *SQLite) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM gardens WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting garden: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w %q", garden.ErrUnknownGarden, name)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
