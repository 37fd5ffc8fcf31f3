// Package session keeps browser state for the lifetime of one run. Nothing is written to
// disk: leaving a component and coming back restores each demo's page, and quitting the
// browser forgets everything.
package session

import (
	"strconv"
	"sync"
)

// Store remembers where every demo was paged to.
type Store struct {
	mu    sync.RWMutex
	pages map[string]int
}

// New returns an empty store.
func New() *Store {
	return &Store{pages: make(map[string]int)}
}

// DemoKey is the page key of the index-th demo of component slug.
func DemoKey(slug string, index int) string {
	return slug + "#" + strconv.Itoa(index)
}

// Page returns the remembered page for key.
func (s *Store) Page(key string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page, ok := s.pages[key]
	return page, ok
}

// SetPage remembers page for key. Pages below 1 are ignored.
func (s *Store) SetPage(key string, page int) {
	if page < 1 {
		return
	}
	s.mu.Lock()
	s.pages[key] = page
	s.mu.Unlock()
}

// Len returns the number of remembered demos.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}

// Reset forgets everything.
func (s *Store) Reset() {
	s.mu.Lock()
	s.pages = make(map[string]int)
	s.mu.Unlock()
}
