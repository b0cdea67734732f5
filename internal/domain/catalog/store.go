package catalog

import (
	"context"
	"time"
)

// Source provides the raw product list from a remote or curated backend.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}

// Store caches a fully ingested lookup table between refreshes.
type Store interface {
	GetTable(ctx context.Context) (Table, bool, error)
	SaveTable(ctx context.Context, table Table, ttl time.Duration) error
}
