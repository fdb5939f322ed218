// Package files owns everything that touches disk: the flat ledger file and
// the CSV/JSON/YAML purchase export-import.
package files

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// Store owns exactly one ledger file path.
type Store struct {
	path string
}

// NewStore creates the file if it does not exist yet, with no content.
func NewStore(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("create ledger file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string { return s.path }

// Save overwrites the whole file with data. Truncate-then-write, never
// append.
func (s *Store) Save(data string) error {
	return os.WriteFile(s.path, []byte(data), 0644)
}

// LoadLines reads the file as an ordered sequence of lines. Read errors are
// propagated, not recovered.
func (s *Store) LoadLines() ([]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
