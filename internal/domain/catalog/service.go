package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Config wires runtime dependencies for the catalog domain.
type Config struct {
	RefreshTTL time.Duration
	Synonyms   FilterSynonyms
}

// Service exposes sunscreen product recommendations.
type Service interface {
	// Recommend returns the products matching a classification, narrowed by
	// the user's preferences. It never fails: source problems degrade to the
	// bundled static table.
	Recommend(ctx context.Context, fitzpatrick int, skinType string, prefs Preferences) []Product
	// Table exposes the active lookup table.
	Table(ctx context.Context) Table
}

type service struct {
	cfg    Config
	source Source
	store  Store
	logger *slog.Logger

	mu        sync.Mutex
	cached    Table
	refreshAt time.Time
	now       func() time.Time
}

// NewService wires up the catalog domain. A nil source pins the service to
// the static table.
func NewService(cfg Config, source Source, store Store, logger *slog.Logger) Service {
	if cfg.Synonyms == nil {
		cfg.Synonyms = DefaultFilterSynonyms()
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 6 * time.Hour
	}
	return &service{
		cfg:    cfg,
		source: source,
		store:  store,
		logger: logger.With("component", "catalog.service"),
		now:    time.Now,
	}
}

func (s *service) Recommend(ctx context.Context, fitzpatrick int, skinType string, prefs Preferences) []Product {
	table := s.Table(ctx)
	return FilterByPreferences(Match(fitzpatrick, skinType, table), prefs, s.cfg.Synonyms)
}

func (s *service) Table(ctx context.Context) Table {
	if s.source == nil {
		return StaticTable()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Before(s.refreshAt) {
		return s.cached
	}

	table := s.loadLocked(ctx)
	s.cached = table
	s.refreshAt = s.now().Add(s.cfg.RefreshTTL)
	return table
}

// loadLocked resolves the active table: shared cache first, then the source.
// Any failure substitutes the static table whole, never a partial merge.
func (s *service) loadLocked(ctx context.Context) Table {
	if s.store != nil {
		cached, found, err := s.store.GetTable(ctx)
		if err != nil {
			s.logger.Warn("table cache read failed", "error", err)
		} else if found && len(cached) > 0 {
			return cached
		}
	}

	products, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Warn("product source unavailable, using static table", "error", err)
		return StaticTable()
	}

	table := BuildTable(products)
	if len(table) == 0 {
		s.logger.Warn("product source yielded no usable rows, using static table", "products", len(products))
		return StaticTable()
	}
	s.logger.Info("product table refreshed", "products", len(products), "keys", len(table))

	if s.store != nil {
		if err := s.store.SaveTable(ctx, table, s.cfg.RefreshTTL); err != nil {
			s.logger.Warn("table cache write failed", "error", err)
		}
	}
	return table
}
