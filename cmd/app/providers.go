package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/spfmatch/spfmatch/internal/domain/catalog"
	"github.com/spfmatch/spfmatch/internal/domain/reminder"
	"github.com/spfmatch/spfmatch/internal/infra/catalogrepo"
	"github.com/spfmatch/spfmatch/internal/infra/catalogstore"
	"github.com/spfmatch/spfmatch/internal/infra/config"
	"github.com/spfmatch/spfmatch/internal/infra/sheets"
	"github.com/spfmatch/spfmatch/internal/infra/uvindex/openmeteo"
)

func provideCatalogConfig(cfg *config.Config) catalog.Config {
	return catalog.Config{
		RefreshTTL: cfg.Catalog.RefreshTTL,
		Synonyms:   catalog.DefaultFilterSynonyms(),
	}
}

// provideCatalogSource picks the product source: the published spreadsheet
// when configured, then Postgres, then nil (bundled static table).
func provideCatalogSource(cfg *config.Config, logger *slog.Logger) catalog.Source {
	if cfg.Catalog.Sheets.SheetID != "" {
		logger.Info("catalog sheet source enabled", "range", cfg.Catalog.Sheets.Range)
		return sheets.NewClient(
			cfg.Catalog.Sheets.BaseURL,
			cfg.Catalog.Sheets.SheetID,
			cfg.Catalog.Sheets.APIKey,
			cfg.Catalog.Sheets.Range,
			logger,
		)
	}

	dsn := strings.TrimSpace(cfg.Catalog.Postgres.DSN)
	if dsn == "" {
		logger.Info("no catalog source configured, using bundled product table")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using bundled product table", "error", err)
		return nil
	}
	if cfg.Catalog.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Catalog.Postgres.MaxConns
	}
	if cfg.Catalog.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Catalog.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using bundled product table", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using bundled product table", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("catalog postgres source enabled")
	return catalogrepo.NewPostgresRepository(pool)
}

func provideCatalogStore(cfg *config.Config, logger *slog.Logger) catalog.Store {
	if cfg.Catalog.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return catalogstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return catalogstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("catalog valkey store enabled", "addr", cfg.Catalog.Valkey.Addr)
			return catalogstore.NewValkeyStore(client, "catalog")
		}
	}
	return catalogstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Catalog.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Catalog.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Catalog.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideReminderConfig(cfg *config.Config) reminder.Config {
	return reminder.Config{
		NotificationTitle: cfg.Reminder.NotificationTitle,
		NotificationBody:  cfg.Reminder.NotificationBody,
		DefaultUVIndex:    cfg.UV.DefaultIndex,
		SessionTTL:        cfg.Reminder.SessionTTL,
	}
}

func provideUVClient(cfg *config.Config) *openmeteo.Client {
	return openmeteo.NewClient(cfg.UV.BaseURL, cfg.UV.RequestTimeout)
}

func provideNotifier(logger *slog.Logger) reminder.Notifier {
	return reminder.NewLogNotifier(logger)
}
