// Package favorites keeps the user's favorite scholarships (by name) in a
// JSON file. The file is read once by Open and rewritten on every change.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Store is a persisted set of record names in insertion order.
type Store struct {
	mu    sync.Mutex
	path  string
	names []string
}

// Open loads the set stored at path. A missing file is an empty set.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("decode favorites %s: %w", path, err)
	}
	for _, n := range names {
		if n != "" && !slices.Contains(s.names, n) {
			s.names = append(s.names, n)
		}
	}
	return s, nil
}

// Names returns a copy of the set.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.names)
}

// Set returns the names as a lookup set.
func (s *Store) Set() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]struct{}, len(s.names))
	for _, n := range s.names {
		out[n] = struct{}{}
	}
	return out
}

// Contains reports whether name is a favorite.
func (s *Store) Contains(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.names, name)
}

// Add marks name as favorite. Adding an existing name is a no-op.
func (s *Store) Add(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" || slices.Contains(s.names, name) {
		return nil
	}
	return s.commit(append(slices.Clone(s.names), name))
}

// Remove drops name. Removing an unknown name is a no-op.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.Index(s.names, name)
	if i < 0 {
		return nil
	}
	return s.commit(slices.Delete(slices.Clone(s.names), i, i+1))
}

// Toggle flips name and reports whether it is now a favorite.
func (s *Store) Toggle(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" {
		return false, nil
	}
	if i := slices.Index(s.names, name); i >= 0 {
		return false, s.commit(slices.Delete(slices.Clone(s.names), i, i+1))
	}
	return true, s.commit(append(slices.Clone(s.names), name))
}

// commit writes next to disk and only then adopts it.
func (s *Store) commit(next []string) error {
	if next == nil {
		next = []string{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create favorites dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".favorites-*")
	if err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write favorites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	s.names = next
	return nil
}
