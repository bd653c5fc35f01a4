package csvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a handle on the flat-file data directory. It is injected into the
// repositories so tests can point each store at an isolated temp directory.
type Store struct {
	dir string

	mu     sync.Mutex
	tables map[string]*Table
}

// NewStore creates the data directory if needed and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Store{
		dir:    dir,
		tables: make(map[string]*Table),
	}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Table returns the table for the given logical name, backed by
// <dir>/<name>.csv. The same *Table is returned for the same name so that
// its mutex serializes writers within the process.
func (s *Store) Table(name string) *Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[name]
	if !ok {
		t = &Table{path: filepath.Join(s.dir, name+".csv")}
		s.tables[name] = t
	}

	return t
}

// RemoveAll deletes every table file in the data directory. Used by the
// taxonomy reset path.
func (s *Store) RemoveAll() error {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("failed to list table files: %w", err)
	}

	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove table file %s: %w", path, err)
		}
	}

	return nil
}
