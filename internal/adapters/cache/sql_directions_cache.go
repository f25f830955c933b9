package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-directions-service/internal/platform/obs"
	"strings"
)

// SQLDirectionsCache is a Postgres-backed cache for rendered directions.
type SQLDirectionsCache struct {
	DB *sql.DB
}

func NewSQLDirectionsCache(db *sql.DB) *SQLDirectionsCache {
	return &SQLDirectionsCache{DB: db}
}

func (s *SQLDirectionsCache) Get(ctx context.Context, key string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "directions.cache.Get")(&err)

	if s.DB == nil {
		return "", false, errors.New("directions cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return "", false, errors.New("get directions cache: key must not be empty")
	}

	var text string
	err = s.DB.QueryRowContext(ctx, `
	SELECT directions
	FROM directions_cache
	WHERE cache_key = $1;
	`, key).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get directions cache: query directions_cache table: %w", err)
	}

	return text, true, nil
}

func (s *SQLDirectionsCache) Put(ctx context.Context, key string, directions string) error {
	if s.DB == nil {
		return errors.New("directions cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert directions cache: key must not be empty")
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT INTO directions_cache (cache_key, directions)
	VALUES ($1, $2)
	ON CONFLICT (cache_key) DO UPDATE
	SET directions = EXCLUDED.directions;
	`, key, directions); err != nil {
		return fmt.Errorf("insert directions cache key=%q: %w", key, err)
	}

	return nil
}
