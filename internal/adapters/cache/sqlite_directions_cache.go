package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache for rendered directions.
// The directions_cache table is created by repositories.InitSchema.
type SqliteDirectionsCache struct {
	DB *sql.DB
}

func NewSqliteDirectionsCache(db *sql.DB) *SqliteDirectionsCache {
	return &SqliteDirectionsCache{DB: db}
}

func (s *SqliteDirectionsCache) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("directions cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return "", false, errors.New("get directions cache: key must not be empty")
	}

	var text string
	err := s.DB.QueryRowContext(ctx, `
	SELECT directions
	FROM directions_cache
	WHERE cache_key = ?;
	`, key).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get directions cache: query directions_cache table: %w", err)
	}

	return text, true, nil
}

func (s *SqliteDirectionsCache) Put(ctx context.Context, key string, directions string) error {
	if s.DB == nil {
		return errors.New("directions cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert directions cache: key must not be empty")
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO directions_cache (cache_key, directions)
	VALUES (?, ?);
	`, key, directions); err != nil {
		return fmt.Errorf("insert directions cache key=%q: %w", key, err)
	}

	return nil
}
