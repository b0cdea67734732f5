package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	UV       UVConfig       `yaml:"uv"`
	Reminder ReminderConfig `yaml:"reminder"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// CatalogConfig controls where sunscreen product data comes from.
type CatalogConfig struct {
	RefreshTTL time.Duration  `yaml:"refreshTtl"`
	Sheets     SheetsConfig   `yaml:"sheets"`
	Postgres   PostgresConfig `yaml:"postgres"`
	Valkey     ValkeyConfig   `yaml:"valkey"`
}

// SheetsConfig points at the published Google Sheets product source.
type SheetsConfig struct {
	BaseURL string `yaml:"baseUrl"`
	SheetID string `yaml:"sheetId"`
	APIKey  string `yaml:"apiKey"`
	Range   string `yaml:"range"`
}

// PostgresConfig contains DSN and pooling settings for the curated catalog.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig contains connection information for the table cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// UVConfig controls the UV index provider.
type UVConfig struct {
	BaseURL        string        `yaml:"baseUrl"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
	DefaultIndex   float64       `yaml:"defaultIndex"`
}

// ReminderConfig controls the reapplication timer behavior.
type ReminderConfig struct {
	NotificationTitle string        `yaml:"notificationTitle"`
	NotificationBody  string        `yaml:"notificationBody"`
	SessionTTL        time.Duration `yaml:"sessionTtl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("CATALOG_REFRESH_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Catalog.RefreshTTL = parsed
		}
	}
	if v := os.Getenv("CATALOG_SHEETS_BASE_URL"); v != "" {
		cfg.Catalog.Sheets.BaseURL = v
	}
	if v := os.Getenv("CATALOG_SHEETS_ID"); v != "" {
		cfg.Catalog.Sheets.SheetID = v
	}
	if v := os.Getenv("CATALOG_SHEETS_API_KEY"); v != "" {
		cfg.Catalog.Sheets.APIKey = v
	}
	if v := os.Getenv("CATALOG_SHEETS_RANGE"); v != "" {
		cfg.Catalog.Sheets.Range = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_DSN"); v != "" {
		cfg.Catalog.Postgres.DSN = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_VALKEY_ENABLED"); v != "" {
		cfg.Catalog.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("CATALOG_VALKEY_ADDR"); v != "" {
		cfg.Catalog.Valkey.Addr = v
	}
	if v := os.Getenv("UV_API_BASE_URL"); v != "" {
		cfg.UV.BaseURL = v
	}
	if v := os.Getenv("UV_REQUEST_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.UV.RequestTimeout = parsed
		}
	}
	if v := os.Getenv("UV_DEFAULT_INDEX"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.UV.DefaultIndex = parsed
		}
	}
	if v := os.Getenv("REMINDER_NOTIFICATION_TITLE"); v != "" {
		cfg.Reminder.NotificationTitle = v
	}
	if v := os.Getenv("REMINDER_NOTIFICATION_BODY"); v != "" {
		cfg.Reminder.NotificationBody = v
	}
	if v := os.Getenv("REMINDER_SESSION_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Reminder.SessionTTL = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/reminders",
				},
			},
		},
		Catalog: CatalogConfig{
			RefreshTTL: 6 * time.Hour,
			Sheets: SheetsConfig{
				BaseURL: "https://sheets.googleapis.com/v4/spreadsheets",
				Range:   "Sunscreen!A2:L",
			},
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		UV: UVConfig{
			BaseURL:        "https://api.open-meteo.com/v1/forecast",
			RequestTimeout: 10 * time.Second,
			DefaultIndex:   5,
		},
		Reminder: ReminderConfig{
			NotificationTitle: "Time to reapply sunscreen!",
			NotificationBody:  "Your reapplication interval has elapsed. Apply sunscreen to all exposed skin.",
			SessionTTL:        12 * time.Hour,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Catalog.RefreshTTL < 0 {
		return errors.New("catalog.refreshTtl cannot be negative")
	}
	if c.Catalog.Sheets.SheetID != "" && c.Catalog.Sheets.APIKey == "" {
		return errors.New("catalog.sheets.apiKey is required when sheetId is set")
	}
	if c.Catalog.Valkey.Enabled && strings.TrimSpace(c.Catalog.Valkey.Addr) == "" {
		return errors.New("catalog.valkey.addr cannot be empty when the table cache is enabled")
	}
	if c.UV.BaseURL == "" {
		return errors.New("uv.baseUrl cannot be empty")
	}
	if c.UV.DefaultIndex < 0 {
		return errors.New("uv.defaultIndex cannot be negative")
	}
	if c.Reminder.NotificationTitle == "" {
		return errors.New("reminder.notificationTitle cannot be empty")
	}
	if c.Reminder.SessionTTL <= 0 {
		return errors.New("reminder.sessionTtl must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
