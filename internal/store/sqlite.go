package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteStore keeps the balance in a single-row table.
// The amount column holds the same text FileStore writes.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// OpenSQLite opens or creates the balance database at dbPath.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(full)")
	if err != nil {
		return nil, fmt.Errorf("opening balance db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{path: dbPath, db: db}, nil
}

// Load reads the stored balance row.
func (s *SQLiteStore) Load() (float64, error) {
	var amount string
	err := s.db.QueryRow("SELECT amount FROM balance WHERE id = 1").Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading balance row: %w", err)
	}

	v, err := parseBalance(amount)
	if err != nil {
		return 0, &CorruptError{Source: s.path, Content: amount, Err: err}
	}
	return v, nil
}

// Save replaces the stored balance row.
func (s *SQLiteStore) Save(balance float64) error {
	if err := checkFinite(balance); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO balance (id, amount, updated_at)
		VALUES (1, ?, ?)`, FormatBalance(balance), now)
	if err != nil {
		return fmt.Errorf("writing balance row: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
