package catalogrepo

import (
	"context"
	"sync"

	"github.com/spfmatch/spfmatch/internal/domain/catalog"
)

// MemoryRepository is an in-memory catalog.Source used for tests/dev.
type MemoryRepository struct {
	mu       sync.RWMutex
	products []catalog.Product
}

// NewMemoryRepository constructs a repo seeded with the given rows.
func NewMemoryRepository(products []catalog.Product) *MemoryRepository {
	return &MemoryRepository{products: append([]catalog.Product(nil), products...)}
}

// Load implements catalog.Source.
func (r *MemoryRepository) Load(_ context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.Product(nil), r.products...), nil
}

// Replace swaps the stored rows.
func (r *MemoryRepository) Replace(products []catalog.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append([]catalog.Product(nil), products...)
}

var _ catalog.Source = (*MemoryRepository)(nil)
