// pkg/memcache/ttl_cache.go
package memcache

import (
	"sync"
	"time"
)

// TTLCache is a small in-process cache for values fetched from slow external
// providers (flight status lookups). Expired entries are dropped lazily on
// read.
type TTLCache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	Delete(key string)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type ttlCache[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
}

func NewTTLCache[V any]() TTLCache[V] {
	return &ttlCache[V]{
		data: make(map[string]entry[V]),
	}
}

func (c *ttlCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (c *ttlCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *ttlCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}
