package resource

import "sync"

// Scope bounds the lifetime of values allocated while servicing one call.
// Everything tracked is released by Clear, in reverse allocation order.
type Scope struct {
	releases []func()
	mu       sync.Mutex
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Track registers a release to run on Clear.
func (s *Scope) Track(release func()) {
	s.mu.Lock()
	s.releases = append(s.releases, release)
	s.mu.Unlock()
}

// Len returns the number of pending releases.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.releases)
}

// Clear runs and forgets every pending release.
func (s *Scope) Clear() {
	s.mu.Lock()
	releases := s.releases
	s.releases = nil
	s.mu.Unlock()

	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}

// With runs fn and clears the scope afterwards, including when fn panics.
func (s *Scope) With(fn func()) {
	defer s.Clear()
	fn()
}

// Alloc inserts value into table for the lifetime of the scope.
func Alloc[T any](s *Scope, table *Table[T], value T) Handle {
	h := table.Insert(value)
	if h != 0 {
		s.Track(func() { table.Remove(h) })
	}
	return h
}
