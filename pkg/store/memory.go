package store

import (
	"context"
	"sync"
)

// MemoryStore keeps collections in process memory. It backs tests and
// ephemeral development runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns a copy of the stored document, nil when absent.
func (s *MemoryStore) Get(_ context.Context, collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[collection]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	return cp, nil
}

// Put replaces the stored document.
func (s *MemoryStore) Put(_ context.Context, collection string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(doc))
	copy(cp, doc)
	s.data[collection] = cp
	return nil
}
