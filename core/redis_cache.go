// Package core provides the shared abstractions of the storefront SDK.
// This file implements a Redis-backed Cache so multiple processes can
// share one GET response cache.
//
// Keys are namespaced ("page3:httpcache:*" by default) to avoid
// collisions when the Redis instance is shared with other services.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache implements Cache on top of go-redis with key namespacing.
type RedisCache struct {
	client    *redis.Client
	namespace string
	logger    Logger
}

// RedisCacheOptions configures the Redis cache
type RedisCacheOptions struct {
	RedisURL  string
	Namespace string // Key namespace, defaults to "page3:httpcache"
	Logger    Logger // Optional logger
}

// NewRedisCache creates a Redis-backed cache and verifies connectivity
// with a ping.
func NewRedisCache(ctx context.Context, opts RedisCacheOptions) (*RedisCache, error) {
	if opts.RedisURL == "" {
		return nil, fmt.Errorf("redis URL is required: %w", ErrMissingConfiguration)
	}
	if opts.Namespace == "" {
		opts.Namespace = "page3:httpcache"
	}
	logger := opts.Logger
	if logger == nil {
		logger = &NoOpLogger{}
	}

	redisOpt, err := redis.ParseURL(opts.RedisURL)
	if err != nil {
		logger.Error("Failed to parse Redis URL", map[string]interface{}{
			"error":      err.Error(),
			"error_type": fmt.Sprintf("%T", err),
		})
		return nil, fmt.Errorf("invalid Redis URL: %w", ErrInvalidConfiguration)
	}

	client := redis.NewClient(redisOpt)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis connection failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("redis ping: %w", ErrConnectionFailed)
	}

	logger.Debug("Redis cache initialized", map[string]interface{}{
		"namespace": opts.Namespace,
	})

	return &RedisCache{
		client:    client,
		namespace: opts.Namespace,
		logger:    logger,
	}, nil
}

func (r *RedisCache) key(k string) string {
	return r.namespace + ":" + k
}

// Get retrieves a value. A missing key returns "" with no error.
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set stores a value with optional TTL
func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a key
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Exists checks whether a key is present
func (r *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

// Close releases the underlying Redis connection pool
func (r *RedisCache) Close() error {
	return r.client.Close()
}
