package domain

import (
	"context"
	"time"
)

// Cache stores serialized reports keyed by a profile fingerprint.
type Cache interface {
	// Get returns nil, nil when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
	Close() error
}

// CacheConfig holds configuration for cache initialization.
type CacheConfig struct {
	// Type is "memory", "redis" or "none"
	Type string `mapstructure:"type" json:"type"`

	LocalMaxSize int `mapstructure:"local_max_size" json:"localMaxSize"`
	LocalTTL     int `mapstructure:"local_ttl" json:"localTTL"` // seconds

	RedisAddr     string `mapstructure:"redis_addr" json:"redisAddr"`
	RedisPassword string `mapstructure:"redis_password" json:"-"`
	RedisDB       int    `mapstructure:"redis_db" json:"redisDB"`
}
