// Package snapshot keeps the values one refresh cycle hands to the next.
package snapshot

import "sync"

// Store holds one value. Readers never see a half-written value.
type Store[T any] struct {
	mu   sync.RWMutex
	data T
}

func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	s.data = v
	s.mu.Unlock()
}

func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Swap stores v and returns the value it replaced.
func (s *Store[T]) Swap(v T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.data
	s.data = v
	return old
}
