// Package cache provides report cache implementations for the navigator.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hacktx/financial-navigator/internal/domain"
)

// New creates a cache based on configuration.
// "memory" returns an in-process LRU, "redis" a shared Redis cache and
// "none" a cache that never stores anything.
func New(cfg domain.CacheConfig) (domain.Cache, error) {
	switch cfg.Type {
	case "memory", "":
		return NewLRUCache(cfg.LocalMaxSize), nil

	case "redis":
		return NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	case "none":
		return NopCache{}, nil

	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

// TTL returns the configured entry lifetime.
func TTL(cfg domain.CacheConfig) time.Duration {
	if cfg.LocalTTL <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(cfg.LocalTTL) * time.Second
}

// NopCache always misses.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, error)              { return nil, nil }
func (NopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NopCache) Delete(context.Context, string) error                     { return nil }
func (NopCache) Ping(context.Context) error                               { return nil }
func (NopCache) Close() error                                             { return nil }
