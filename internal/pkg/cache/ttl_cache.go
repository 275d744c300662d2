package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// TTLCache is a typed, expiring cache. Keys are hashed before storage so raw
// secrets such as bearer tokens never sit in the map.
type TTLCache[T any] struct {
	items  *gocache.Cache
	name   string
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

// NewTTLCache creates a cache whose entries expire after ttl.
func NewTTLCache[T any](ttl time.Duration, name string, logger *zap.Logger) *TTLCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TTLCache[T]{
		items:  gocache.New(ttl, 2*ttl),
		name:   name,
		logger: logger,
	}
}

func (c *TTLCache[T]) Set(key string, value T) {
	c.items.Set(hashKey(key), value, gocache.DefaultExpiration)
	c.sets.Add(1)
	c.logger.Debug("Cache set", zap.String("cache", c.name))
}

func (c *TTLCache[T]) Get(key string) (T, bool) {
	v, found := c.items.Get(hashKey(key))
	if !found {
		c.misses.Add(1)
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		c.misses.Add(1)
		var zero T
		return zero, false
	}
	c.hits.Add(1)
	return typed, true
}

func (c *TTLCache[T]) Delete(key string) {
	c.items.Delete(hashKey(key))
}

func (c *TTLCache[T]) Len() int {
	return c.items.ItemCount()
}

func (c *TTLCache[T]) Clear() {
	c.items.Flush()
	c.logger.Debug("Cache cleared", zap.String("cache", c.name))
}

func (c *TTLCache[T]) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
	}
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
