package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageDriver  string
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	// RateLimit uses the limiter format, e.g. "100-M" for 100 requests a minute.
	RateLimit          string
	CORSAllowedOrigins []string

	PostingMaxAttempts  int
	PostingRetryBackoff time.Duration
	PostingLockTimeout  time.Duration

	// LedgerLocation decides which calendar date "today" is.
	LedgerLocation *time.Location

	DesignatedAccounts  domain.DesignatedAccounts
	SeedDefaultAccounts bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_DRIVER", StoragePostgres)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "bookkeeping-core")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTING_MAX_ATTEMPTS", 3)
	viper.SetDefault("POSTING_RETRY_BACKOFF", "25ms")
	viper.SetDefault("POSTING_LOCK_TIMEOUT", "5s")
	viper.SetDefault("LEDGER_TIMEZONE", "UTC")
	viper.SetDefault("CASH_ACCOUNT_ID", "")
	viper.SetDefault("SALES_ACCOUNT_ID", "")
	viper.SetDefault("RECEIVABLE_ACCOUNT_ID", "")
	viper.SetDefault("ADJUSTMENT_ACCOUNT_ID", "")
	viper.SetDefault("SEED_DEFAULT_ACCOUNTS", false)

	// Actual environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         viper.GetString("PGSQL_URL"),
		Port:                viper.GetString("PORT"),
		IsProduction:        viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       viper.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:       strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		MigrationsPath:      viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:           viper.GetString("JWT_SECRET"),
		JWTIssuer:           viper.GetString("JWT_ISSUER"),
		RateLimit:           viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:  splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		PostingMaxAttempts:  viper.GetInt("POSTING_MAX_ATTEMPTS"),
		SeedDefaultAccounts: viper.GetBool("SEED_DEFAULT_ACCOUNTS"),
		DesignatedAccounts: domain.DesignatedAccounts{
			CashAccountID:       viper.GetString("CASH_ACCOUNT_ID"),
			SalesAccountID:      viper.GetString("SALES_ACCOUNT_ID"),
			ReceivableAccountID: viper.GetString("RECEIVABLE_ACCOUNT_ID"),
			AdjustmentAccountID: viper.GetString("ADJUSTMENT_ACCOUNT_ID"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %s", StoragePostgres)
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER '%s'", cfg.StorageDriver)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}

	if cfg.PostingMaxAttempts < 1 {
		slog.Warn("Invalid POSTING_MAX_ATTEMPTS, defaulting to 1", slog.Int("value", cfg.PostingMaxAttempts))
		cfg.PostingMaxAttempts = 1
	}

	var err error
	if cfg.PostingRetryBackoff, err = parseDuration("POSTING_RETRY_BACKOFF", 25*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.PostingLockTimeout, err = parseDuration("POSTING_LOCK_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	tz := viper.GetString("LEDGER_TIMEZONE")
	if cfg.LedgerLocation, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE '%s': %w", tz, err)
	}

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := viper.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid value for %s ('%s')", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
