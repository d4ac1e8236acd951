package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/avenlyn/commerce-backend/internal/pkg/env"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

// Cache is a small read-through cache for hot lookups. Misses and backend
// failures both surface as "not cached" so callers always fall back to the
// store.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	Close() error
}

type cache struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewCache connects to redis at REDIS_ADDR. Callers treat the cache as
// optional: when REDIS_ADDR is unset this returns a nil Cache and no error.
func NewCache(log *logger.Logger) (Cache, error) {
	if log == nil {
		return nil, errors.New("logger required")
	}

	addr := strings.TrimSpace(env.Get("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &cache{log: log.With("service", "RedisCache"), rdb: rdb}, nil
}

func (c *cache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}

func (c *cache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "key", key, "error", err)
	}
}

func (c *cache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache delete failed", "keys", keys, "error", err)
	}
}

func (c *cache) Close() error { return c.rdb.Close() }
