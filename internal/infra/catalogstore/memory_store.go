package catalogstore

import (
	"context"
	"sync"
	"time"

	"github.com/spfmatch/spfmatch/internal/domain/catalog"
)

// MemoryStore is an in-memory catalog.Store used for tests/dev and as the
// fallback when Valkey is unavailable.
type MemoryStore struct {
	mu        sync.RWMutex
	table     catalog.Table
	expiresAt time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetTable implements catalog.Store.
func (s *MemoryStore) GetTable(_ context.Context) (catalog.Table, bool, error) {
	s.mu.RLock()
	table, expiresAt := s.table, s.expiresAt
	s.mu.RUnlock()
	if table == nil {
		return nil, false, nil
	}
	if !expiresAt.IsZero() && expiresAt.Before(time.Now()) {
		s.mu.Lock()
		s.table = nil
		s.mu.Unlock()
		return nil, false, nil
	}
	return table, true, nil
}

// SaveTable caches the table with optional TTL.
func (s *MemoryStore) SaveTable(_ context.Context, table catalog.Table, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.expiresAt = time.Time{}
	if ttl > 0 {
		s.expiresAt = time.Now().Add(ttl)
	}
	return nil
}

var _ catalog.Store = (*MemoryStore)(nil)
