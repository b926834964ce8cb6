// Package jsonstore persists each collection as one flat JSON file under a
// data directory. Every mutation is a whole-file rewrite guarded by a single
// store-level mutex; that mutex is the one place to strengthen concurrency
// control if this backend ever outgrows a single interactive user.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"golang.org/x/exp/slog"
)

// Store owns the data directory and serializes access to it
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created lazily on
// the first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// load reads a collection file into v. A missing or corrupt file is treated
// as an empty collection, never as a failure: v is left at its zero value and
// the condition is logged. Decoding goes through a scratch value so a file
// that fails partway through (valid prefix, bad record later) cannot leave v
// half-populated. Callers must hold s.mu.
func (s *Store) load(name string, v interface{}) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Error("Failed to read collection file", "collection", name, "error", err)
		}
		return
	}
	scratch := reflect.New(reflect.TypeOf(v).Elem())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		slog.Warn("Collection file is corrupt, treating as empty", "collection", name, "error", err)
		return
	}
	reflect.ValueOf(v).Elem().Set(scratch.Elem())
}

// save rewrites the entire collection file, creating the data directory as
// needed. Callers must hold s.mu.
func (s *Store) save(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		slog.Error("Failed to create data directory", "dir", s.dir, "error", err)
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		slog.Error("Failed to write collection file", "collection", name, "error", err)
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}

// NextID returns 1 + the highest id in the collection, or 1 when it is empty
func NextID(ids []int) int {
	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
