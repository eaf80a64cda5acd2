// Package ledger persists the mapping from computed video titles to their
// published URLs so repeat uploads can be detected across runs.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Store reads and writes the upload ledger as a single JSON object on disk.
// The file is read fully at run start and rewritten fully at run end; there
// is no incremental append format and no locking (single-process usage).
type Store struct {
	path string
}

// NewStore builds a Store rooted at the provided path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path reports the ledger file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the ledger from disk. A missing file resolves to an empty map.
func (s *Store) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read upload ledger: %w", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode upload ledger: %w", err)
	}
	return entries, nil
}

// Save atomically replaces the ledger file with the provided entries.
func (s *Store) Save(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("ensure ledger directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode upload ledger: %w", err)
	}

	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write upload ledger: %w", err)
	}
	return nil
}
