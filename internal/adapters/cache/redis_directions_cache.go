package cache

import (
	"context"
	"errors"
	"fmt"
	"route-directions-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "directions:"

// Redis-backed cache for rendered directions. Entries expire after TTL (0 keeps them).
type RedisDirectionsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDirectionsCache(client *redis.Client, ttl time.Duration) *RedisDirectionsCache {
	return &RedisDirectionsCache{Client: client, TTL: ttl}
}

func (c *RedisDirectionsCache) Get(ctx context.Context, key string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "directions.cache.redis.Get")(&err)

	if c.Client == nil {
		return "", false, errors.New("directions cache: redis client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return "", false, errors.New("get directions cache: key must not be empty")
	}

	text, err := c.Client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get directions cache: redis get: %w", err)
	}

	return text, true, nil
}

func (c *RedisDirectionsCache) Put(ctx context.Context, key string, directions string) error {
	if c.Client == nil {
		return errors.New("directions cache: redis client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert directions cache: key must not be empty")
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+key, directions, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert directions cache key=%q: %w", key, err)
	}

	return nil
}
