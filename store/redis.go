package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Redis-backed store, for dashboards whose sessions span
// restarts or multiple frontends.
type Redis struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds configuration for the Redis store.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "l10n:")
}

// NewRedis creates a Redis store and verifies the connection.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisFromClient creates a Redis store from an existing client.
func NewRedisFromClient(client *redis.Client, keyPrefix string) *Redis {
	if keyPrefix == "" {
		keyPrefix = "l10n:"
	}
	return &Redis{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a value. A missing key yields an empty string; any other
// failure is returned so callers can degrade to their default.
func (r *Redis) Get(key string) (string, error) {
	ctx := context.Background()
	val, err := r.client.Get(ctx, r.keyPrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a value. Preferences do not expire.
func (r *Redis) Set(key, value string) error {
	ctx := context.Background()
	return r.client.Set(ctx, r.keyPrefix+key, value, 0).Err()
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Ping tests the Redis connection.
func (r *Redis) Ping() error {
	return r.client.Ping(context.Background()).Err()
}

// Verify Redis implements Store
var _ Store = (*Redis)(nil)
