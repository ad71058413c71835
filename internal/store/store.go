// Package store persists the balance, either as a plain text file or in a
// SQLite database. Both backends share the same text encoding of the value.
package store

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/cbank/internal/ledger"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrCorrupt matches any *CorruptError.
var ErrCorrupt = errors.New("corrupted balance")

// ErrNotFinite is returned by Save for NaN or infinite balances, which
// have no persisted form that Load accepts.
var ErrNotFinite = errors.New("balance is not a finite number")

// CorruptError reports persisted content that is not a decimal number.
type CorruptError struct {
	Source  string // file or database path
	Content string
	Backup  string // path of the saved copy, empty when no backup was made
	Err     error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupted balance in %s: %v", e.Source, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }

// Backend is a place the balance can be loaded from and saved to.
type Backend interface {
	// Load returns the persisted balance. Missing or empty storage yields 0
	// and no error. Unparseable content yields 0 and a *CorruptError.
	Load() (float64, error)
	// Save replaces the persisted balance.
	Save(balance float64) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend       string
	Path          string
	BackupCorrupt bool
}

// Open returns the backend named by opts.Backend. An empty name means file.
func Open(opts Options) (Backend, error) {
	if opts.Path == "" {
		return nil, errors.New("no balance path configured")
	}
	switch opts.Backend {
	case "", BackendFile:
		return &FileStore{Path: opts.Path, BackupCorrupt: opts.BackupCorrupt}, nil
	case BackendSQLite:
		s, err := OpenSQLite(opts.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

// FormatBalance renders a balance the way it is persisted: the shortest
// decimal form, always with a fractional part ("100.0", "0.1").
func FormatBalance(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func checkFinite(v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("%w: %v", ErrNotFinite, v)
	}
	return nil
}

// parseBalance decodes persisted content with the same rules as typed
// amounts. Blank content is zero.
func parseBalance(content string) (float64, error) {
	s := strings.TrimSpace(content)
	if s == "" {
		return 0, nil
	}
	return ledger.ParseAmount(s)
}
