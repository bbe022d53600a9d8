// Package ratelimit counts hits per key inside fixed windows.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/event-catering/internal/config"
)

// Counter increments key and returns the hit count for the current
// window together with the time left in it.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// ======================================================
// Redis
// ======================================================

type RedisCounter struct {
	client *redis.Client
	prefix string
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client, prefix: "ratelimit:"}
}

func (c *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	key = c.prefix + key

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}

	left := ttl.Val()
	if left < 0 {
		if err := c.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		left = window
	}
	return incr.Val(), left, nil
}

// ======================================================
// In-process fallback
// ======================================================

type MemoryCounter struct {
	mu      sync.Mutex
	windows map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	count int64
	reset time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{windows: map[string]*bucket{}, now: time.Now}
}

func (c *MemoryCounter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	b, ok := c.windows[key]
	if !ok || !now.Before(b.reset) {
		b = &bucket{reset: now.Add(window)}
		c.windows[key] = b
	}
	b.count++

	if len(c.windows) > 10000 {
		c.sweep(now)
	}
	return b.count, b.reset.Sub(now), nil
}

func (c *MemoryCounter) sweep(now time.Time) {
	for k, b := range c.windows {
		if !now.Before(b.reset) {
			delete(c.windows, k)
		}
	}
}

// Compile-time check
var (
	_ Counter = (*RedisCounter)(nil)
	_ Counter = (*MemoryCounter)(nil)
)
