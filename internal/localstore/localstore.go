// Package localstore implements the offline/demo backing store: one JSON
// file per collection, read wholesale and rewritten wholesale on every
// mutation. It mirrors the shape the shop's demo mode has always used.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists named collections as JSON files under a single directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open creates the data directory if needed and returns a Store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load decodes the collection stored under key into v. A missing file is not
// an error: v is left at its zero value (an empty collection). Malformed JSON
// is unexpected and surfaces as an error.
func (s *Store) Load(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read collection %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode collection %s: %w", key, err)
	}
	return nil
}

// Save rewrites the collection under key with the JSON encoding of v.
func (s *Store) Save(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}

// Delete removes the collection file for key. Missing files are ignored.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete collection %s: %w", key, err)
	}
	return nil
}
