// Package memory is the preference store used when no database is
// configured: saved state lives for the life of the process.
package memory

import (
	"context"
	"sync"

	"vue-workorders/internal/storage"
)

type Store struct {
	mu    sync.RWMutex
	prefs map[string]storage.Prefs
}

func New() *Store {
	return &Store{prefs: make(map[string]storage.Prefs)}
}

func (s *Store) GetPrefs(_ context.Context, key string) (*storage.Prefs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prefs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (s *Store) SavePrefs(_ context.Context, key string, prefs storage.Prefs) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[key] = prefs
	return nil
}
