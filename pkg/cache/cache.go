// Package cache provides the read-through cache fronting repository reads.
// Entries live under composite string keys built by the key helpers in
// keys.go; writes in the service layer invalidate them either by exact key
// or by prefix, and a fixed TTL acts as the safety net for any key an
// invalidation pass misses.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/viccon/sturdyc"
)

type Config struct {
	// Capacity is the maximum number of cached entries.
	Capacity int
	// NumShards splits the cache for concurrent access.
	NumShards int
	// TTL expires entries independently of explicit invalidation.
	TTL time.Duration
	// EvictionPercentage is how much of a full shard gets evicted, 1-100.
	EvictionPercentage int
}

func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          64,
		TTL:                300 * time.Second,
		EvictionPercentage: 10,
	}
}

func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.New("cache: capacity must be greater than 0")
	}
	if c.NumShards <= 0 {
		return errors.New("cache: num shards must be greater than 0")
	}
	if c.TTL <= 0 {
		return errors.New("cache: ttl must be greater than 0")
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return errors.New("cache: eviction percentage must be between 1 and 100")
	}
	return nil
}

// Cache wraps a sturdyc client. Values are stored as any; the typed Fetch
// helper restores the concrete type on the way out.
type Cache struct {
	client *sturdyc.Client[any]
}

func New(cfg Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client := sturdyc.New[any](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage)
	return &Cache{client: client}, nil
}

// Fetch returns the cached value for key, or invokes loader, stores its
// result under key and returns it. Concurrent misses on the same key may
// each run the loader; loaders are idempotent reads so that is tolerated.
func Fetch[T any](ctx context.Context, c *Cache, key string, loader func(context.Context) (T, error)) (T, error) {
	v, err := c.client.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate deletes the listed keys. Deleting a key that is not cached is
// a no-op, never an error.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		c.client.Delete(key)
	}
	return nil
}

// InvalidatePrefix deletes every cached entry whose key starts with prefix.
// This is the wildcard form cascading deletes rely on: dropping a menu
// drops every descendant key scoped under it.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) error {
	for _, key := range c.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			c.client.Delete(key)
		}
	}
	return nil
}

// Flush drops every cached entry. The batch reconciliation job calls it
// after replacing table contents wholesale.
func (c *Cache) Flush(ctx context.Context) error {
	for _, key := range c.client.ScanKeys() {
		c.client.Delete(key)
	}
	return nil
}

// Size reports the number of cached entries.
func (c *Cache) Size() int {
	return c.client.Size()
}
