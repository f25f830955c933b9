package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"route-directions-service/internal/adapters/cache"
	"route-directions-service/internal/adapters/catalog"
	"route-directions-service/internal/adapters/repositories"
	"route-directions-service/internal/adapters/sessions"
	"route-directions-service/internal/api"
	"route-directions-service/internal/config"
	"route-directions-service/internal/platform/db"
	"route-directions-service/internal/ports"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (memory, SQLite or Postgres catalog; optional Redis cache)
// behind ports and starts the HTTP server.
func main() {
	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	segCatalog, dirCache, closeDB, err := openCatalog(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	if cfg.RedisURL != "" {
		rc, err := openRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()
		dirCache = cache.NewRedisDirectionsCache(rc, cfg.CacheTTL)
	}

	router := api.NewRouter(segCatalog, sessions.NewMemorySessionStore(), api.RouterConfig{
		DefaultFormatter: cfg.DefaultFormatter,
		NormalizeTurns:   cfg.NormalizeTurns,
		Cache:            dirCache,
	})

	log.Printf("Server listening addr=:%s catalog=%s cache=%t", cfg.Port, cfg.CatalogDriver, dirCache != nil)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// Return the configured catalog, the directions cache stored next to it (nil for memory)
// and a close func for the underlying database.
func openCatalog(cfg config.Config) (ports.SegmentCatalog, ports.DirectionsCache, func(), error) {
	noop := func() {}

	switch cfg.CatalogDriver {
	case config.CatalogSQLite:
		sqlDB, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, noop, err
		}
		// Initialize schema and seed demo data on startup for local runs.
		if err := initAndSeed(sqlDB, cfg.SeedPath, repositories.SQLite); err != nil {
			_ = sqlDB.Close()
			return nil, nil, noop, err
		}
		return catalog.NewSqliteCatalog(sqlDB), cache.NewSqliteDirectionsCache(sqlDB), func() { _ = sqlDB.Close() }, nil

	case config.CatalogPostgres:
		// Schema and seed data are managed by cmd/dbtool.
		sqlDB, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, noop, err
		}
		return catalog.NewSQLCatalog(sqlDB), cache.NewSQLDirectionsCache(sqlDB), func() { _ = sqlDB.Close() }, nil

	default:
		entries, err := repositories.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			log.Printf("seed file unavailable, using example segments: path=%s err=%v", cfg.SeedPath, err)
			return catalog.NewExampleCatalog(), nil, noop, nil
		}
		c, err := catalog.NewMemoryCatalog(entries)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("open memory catalog: %w", err)
		}
		return c, nil, noop, nil
	}
}

func initAndSeed(sqlDB *sql.DB, seedPath string, dialect repositories.Dialect) error {
	if err := repositories.InitSchema(sqlDB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(sqlDB, seedPath, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func openRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("open redis: parse url: %w", err)
	}

	rc := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("open redis: ping: %w", err)
	}

	return rc, nil
}
