// Package config reads service settings from the environment.
// Callers load a .env file with godotenv before calling Load.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogMemory   = "memory"
	CatalogSQLite   = "sqlite"
	CatalogPostgres = "postgres"
)

type Config struct {
	Port             string
	CatalogDriver    string
	DBPath           string
	DatabaseURL      string
	SeedPath         string
	DefaultFormatter string
	NormalizeTurns   bool
	// Optional. When set, rendered directions are cached in Redis instead of the catalog database.
	RedisURL string
	CacheTTL time.Duration
}

// Return the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load .env files if present. A missing file is not an error.
func LoadDotEnv(filenames ...string) bool {
	return godotenv.Load(filenames...) == nil
}

func Load() (Config, error) {
	cfg := Config{
		Port:             Get("PORT", "8080"),
		CatalogDriver:    strings.ToLower(Get("CATALOG_DRIVER", CatalogMemory)),
		DBPath:           Get("DB_PATH", "data/app.db"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SeedPath:         Get("SEED_PATH", "data/seeds/segments.json"),
		DefaultFormatter: Get("DEFAULT_FORMATTER", "driving"),
		RedisURL:         os.Getenv("REDIS_URL"),
	}

	ttl, err := time.ParseDuration(Get("CACHE_TTL", "24h"))
	if err != nil || ttl < 0 {
		return Config{}, fmt.Errorf("load config: CACHE_TTL must be a non-negative duration: %q", Get("CACHE_TTL", "24h"))
	}
	cfg.CacheTTL = ttl

	normalize, err := strconv.ParseBool(Get("NORMALIZE_TURNS", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: NORMALIZE_TURNS: %w", err)
	}
	cfg.NormalizeTurns = normalize

	switch cfg.CatalogDriver {
	case CatalogMemory, CatalogSQLite:
	case CatalogPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return Config{}, fmt.Errorf("load config: DATABASE_URL is required for CATALOG_DRIVER=%s", cfg.CatalogDriver)
		}
	default:
		return Config{}, fmt.Errorf("load config: unknown CATALOG_DRIVER %q", cfg.CatalogDriver)
	}

	return cfg, nil
}
