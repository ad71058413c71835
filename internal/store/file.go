package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileStore keeps the balance as the sole content of a text file.
type FileStore struct {
	Path string
	// BackupCorrupt copies unparseable content to Path+".corrupt" before
	// Load resets to zero.
	BackupCorrupt bool
}

// Load reads the balance file.
func (s *FileStore) Load() (float64, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading balance file: %w", err)
	}

	v, err := parseBalance(string(data))
	if err != nil {
		ce := &CorruptError{Source: s.Path, Content: string(data), Err: err}
		if s.BackupCorrupt {
			backup := s.Path + ".corrupt"
			if werr := os.WriteFile(backup, data, 0o600); werr == nil {
				ce.Backup = backup
			}
		}
		return 0, ce
	}
	return v, nil
}

// Save overwrites the balance file. A failed write may leave the file
// truncated or partially written.
func (s *FileStore) Save(balance float64) error {
	if err := checkFinite(balance); err != nil {
		return err
	}
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening balance file: %w", err)
	}
	if _, err := f.WriteString(FormatBalance(balance)); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing balance file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing balance file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is opened and closed inside each call.
func (s *FileStore) Close() error { return nil }
