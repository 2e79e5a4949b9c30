// Package cache is a thin read-through response cache on Redis. Caching is
// a performance optimization only: when Redis is unreachable the cache
// degrades to a no-op and every request goes to the database.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// New connects to Redis and returns a working cache, or a disabled one if
// the ping fails.
func New(addr, password string, db int, ttl time.Duration, log *zap.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn("redis unavailable, response caching disabled", zap.Error(err))
		client.Close()
		return &Cache{ttl: ttl, log: log}
	}

	log.Info("redis connected", zap.String("addr", addr))
	return &Cache{client: client, ttl: ttl, log: log}
}

// Enabled reports whether a Redis connection is live.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get returns the cached value for key, if present.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if !c.Enabled() {
		return "", false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores the value in the background so the response is not delayed by
// the cache write.
func (c *Cache) Set(key, value string) {
	if !c.Enabled() {
		return
	}
	go func() {
		if err := c.client.Set(context.Background(), key, value, c.ttl).Err(); err != nil {
			c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
	}()
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
