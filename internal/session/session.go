// Package session owns the one mutable thing in the service: the
// currently loaded dataset. It is replaced wholesale on upload or clear,
// never edited, so readers always see a consistent snapshot.
package session

import (
	"sync"
	"time"

	"vue-workorders/internal/workorder"
)

type Session struct {
	mu       sync.RWMutex
	dataset  workorder.Dataset
	source   string
	loadedAt time.Time
}

func New() *Session {
	return &Session{}
}

// Replace installs a freshly normalized dataset. An upload that lands
// while another is in flight simply supersedes it; there is no partial
// merge state.
func (s *Session) Replace(dataset workorder.Dataset, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = dataset
	s.source = source
	s.loadedAt = time.Now()
}

// Clear empties the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = nil
	s.source = ""
	s.loadedAt = time.Time{}
}

// Snapshot returns the current dataset and its source file name. The
// returned slice is shared and must be treated as read-only; filtering
// always produces a fresh slice before anything sorts.
func (s *Session) Snapshot() (workorder.Dataset, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset, s.source
}

// Len reports how many records are loaded.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dataset)
}
