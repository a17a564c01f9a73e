// Package state persists page view state between runs.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pagekit/pagekit/internal/config/data"
	"github.com/pagekit/pagekit/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

// Store keeps one view state per page, keyed by the page's absolute path.
type Store struct {
	path  string
	pages map[string]*model.ViewState
	mx    sync.RWMutex
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{
		path:  path,
		pages: make(map[string]*model.ViewState),
	}
}

// Load reads the store file. A missing file leaves the store empty.
func (s *Store) Load() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	bb, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read state file %q: %w", s.path, err)
	}

	pages := make(map[string]*model.ViewState)
	if err := msgpack.Unmarshal(bb, &pages); err != nil {
		return fmt.Errorf("failed to decode state file %q: %w", s.path, err)
	}
	s.pages = pages

	return nil
}

// Save writes the store file.
func (s *Store) Save() error {
	s.mx.RLock()
	defer s.mx.RUnlock()

	bb, err := msgpack.Marshal(s.pages)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := data.EnsureFullPath(s.path, 0700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, bb, 0600); err != nil {
		return fmt.Errorf("failed to write state file %q: %w", s.path, err)
	}

	return nil
}

// Get returns a copy of a page's view state, empty if none was saved.
func (s *Store) Get(page string) *model.ViewState {
	s.mx.RLock()
	defer s.mx.RUnlock()

	if vs, ok := s.pages[Key(page)]; ok {
		return vs.Clone()
	}
	return model.NewViewState()
}

// Put records a page's view state.
func (s *Store) Put(page string, vs *model.ViewState) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.pages[Key(page)] = vs.Clone()
}

// Forget drops a page's view state.
func (s *Store) Forget(page string) {
	s.mx.Lock()
	defer s.mx.Unlock()

	delete(s.pages, Key(page))
}

// Key normalizes a page path into a store key.
func Key(page string) string {
	if abs, err := filepath.Abs(page); err == nil {
		return abs
	}
	return filepath.Clean(page)
}
