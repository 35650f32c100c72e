package sharded

import (
	"context"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/cachekit/cache"
)

// Loader fetches the value for a missing key from the source of truth.
type Loader[V any] func(ctx context.Context, key string) (V, error)

// Cache is a string-keyed LRU cache split across independently locked
// shards. Keys are assigned to shards by xxhash, so a hot working set
// spreads write contention across shard locks instead of serializing on
// one mutex. Each shard keeps its own recency order; LRU ordering is
// per-shard, not global.
type Cache[V any] struct {
	shards []*cache.LRUCache[string, V]
	mask   uint64
	group  singleflight.Group
}

// New creates a sharded cache holding at most capacity entries in total,
// split evenly (rounding up) across shards. The shard count is rounded up
// to the next power of two so shard selection is a mask, not a modulo.
// Returns cache.ErrInvalidCapacity or ErrInvalidShards on non-positive
// inputs.
func New[V any](capacity, shards int, opts ...Option[V]) (*Cache[V], error) {
	if capacity <= 0 {
		return nil, cache.ErrInvalidCapacity
	}
	if shards <= 0 {
		return nil, ErrInvalidShards
	}

	cfg := newOptions[V](opts...)

	n := nextPowerOfTwo(shards)
	perShard := (capacity + n - 1) / n

	c := &Cache[V]{
		shards: make([]*cache.LRUCache[string, V], n),
		mask:   uint64(n - 1),
	}
	for i := range c.shards {
		shard, err := cache.NewLRUCache[string, V](perShard, cfg.shardOpts...)
		if err != nil {
			return nil, err
		}
		c.shards[i] = shard
	}

	return c, nil
}

// Put stores a value under key in its owning shard.
func (c *Cache[V]) Put(key string, value V) {
	c.shard(key).Put(key, value)
}

// Get returns the value stored under key, refreshing its recency within
// its shard. A miss returns the zero value and false.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.shard(key).Get(key)
}

// Peek returns the value stored under key without refreshing recency.
func (c *Cache[V]) Peek(key string) (V, bool) {
	return c.shard(key).Peek(key)
}

// Contains reports whether key is present without refreshing recency.
func (c *Cache[V]) Contains(key string) bool {
	return c.shard(key).Contains(key)
}

// Remove deletes key from its shard and returns its value. No eviction
// callbacks fire for explicit removal.
func (c *Cache[V]) Remove(key string) (V, bool) {
	return c.shard(key).Remove(key)
}

// Clear drops every entry from every shard.
func (c *Cache[V]) Clear() {
	for _, s := range c.shards {
		s.Clear()
	}
}

// Len returns the total number of entries across all shards.
func (c *Cache[V]) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.Len()
	}
	return total
}

// Capacity returns the summed capacity of all shards. Because the
// per-shard split rounds up, this may slightly exceed the capacity
// requested at construction.
func (c *Cache[V]) Capacity() int {
	total := 0
	for _, s := range c.shards {
		total += s.Capacity()
	}
	return total
}

// Resize changes the total capacity, splitting it across shards the same
// way New does, and returns the total number of entries evicted.
func (c *Cache[V]) Resize(capacity int) (int, error) {
	if capacity <= 0 {
		return 0, cache.ErrInvalidCapacity
	}

	n := len(c.shards)
	perShard := (capacity + n - 1) / n

	evicted := 0
	for _, s := range c.shards {
		ev, err := s.Resize(perShard)
		if err != nil {
			return evicted, err
		}
		evicted += ev
	}
	return evicted, nil
}

// OnEvicted subscribes a callback to eviction events on every shard.
func (c *Cache[V]) OnEvicted(fn cache.EvictCallback[string, V]) {
	for _, s := range c.shards {
		s.OnEvicted(fn)
	}
}

// Stats returns counters aggregated across all shards.
func (c *Cache[V]) Stats() cache.Stats {
	var agg cache.Stats
	for _, s := range c.shards {
		st := s.Stats()
		agg.Hits += st.Hits
		agg.Misses += st.Misses
		agg.Evictions += st.Evictions
		agg.Len += st.Len
		agg.Capacity += st.Capacity
	}
	return agg
}

// GetOrLoad returns the cached value for key, or invokes loader to fetch
// and cache it. Concurrent calls for the same key are coalesced into a
// single loader invocation; the other callers block and share its result.
// Loader errors are returned to every waiting caller and nothing is
// cached, so the next call retries. A cancelled context unblocks the
// waiting caller without cancelling an in-flight load.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, loader Loader[V]) (V, error) {
	var zero V
	if loader == nil {
		return zero, ErrNilLoader
	}
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		// Re-check under the flight: an earlier flight for this key may
		// have populated the cache after our miss.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := loader(ctx, key)
		if err != nil {
			return nil, err
		}
		c.Put(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

func (c *Cache[V]) shard(key string) *cache.LRUCache[string, V] {
	return c.shards[xxhash.Sum64String(key)&c.mask]
}

// nextPowerOfTwo rounds n up to the nearest power of two.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}
