package handler

import (
	"sync"

	"github.com/google/uuid"
)

// streams tracks the live SSE streams of one kind so later requests can
// steer them by id.
type streams[T any] struct {
	mu sync.Mutex
	m  map[string]T
}

func newStreams[T any]() *streams[T] {
	return &streams[T]{m: make(map[string]T)}
}

func (s *streams[T]) add(v T) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.m[id] = v
	s.mu.Unlock()

	return id
}

func (s *streams[T]) get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.m[id]
	return v, ok
}

func (s *streams[T]) remove(id string) {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
}
