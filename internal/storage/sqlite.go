// ABOUTME: SQLite storage slot for the workout snapshot
// ABOUTME: Provides local-only persistence using pure Go SQLite driver

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteSlot implements Slot with a single-row table in a local SQLite database.
type SQLiteSlot struct {
	db   *sql.DB
	path string
	name string
}

// Compile-time check that SQLiteSlot implements Slot.
var _ Slot = (*SQLiteSlot)(nil)

// NewSQLiteSlot opens (or creates) the database at path.
// Creates the directory and database file if they don't exist.
func NewSQLiteSlot(path string) (*SQLiteSlot, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // 0750 is appropriate for user data directory
		return nil, fmt.Errorf("create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteSlot{db: db, path: path, name: SlotName}

	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// migrate creates or updates the database schema.
func (s *SQLiteSlot) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			name TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Name implements Slot.
func (s *SQLiteSlot) Name() string { return "sqlite:" + s.path }

// Read implements Slot.
func (s *SQLiteSlot) Read() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM slots WHERE name = ?", s.name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("select slot: %w", err)
	}
	return data, nil
}

// Write implements Slot.
func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.name, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}

// Clear implements Slot.
func (s *SQLiteSlot) Clear() error {
	if _, err := s.db.Exec("DELETE FROM slots WHERE name = ?", s.name); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
