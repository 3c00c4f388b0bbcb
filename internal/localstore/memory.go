package localstore

import (
	"fmt"
	"sync"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// MemoryStore is a map-backed Store for tests and non-browser callers.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]string
	limit int
}

// NewMemoryStore creates an empty MemoryStore without a size limit
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// NewLimitedMemoryStore rejects values longer than limit bytes, the way a
// browser refuses oversized cookies.
func NewLimitedMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{data: make(map[string]string), limit: limit}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	if s.limit > 0 && len(value) > s.limit {
		return fmt.Errorf("%w: %s is %d bytes, limit %d", domain.ErrLocalStoreFull, key, len(value), s.limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
