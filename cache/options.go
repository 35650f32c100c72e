package cache

// Option is a functional option for configuring the cache at construction.
type Option[K comparable, V any] func(*LRUCache[K, V])

// WithEvictCallback registers an eviction subscriber at construction time,
// before any entry can be evicted. Equivalent to calling OnEvicted on the
// returned cache.
func WithEvictCallback[K comparable, V any](fn EvictCallback[K, V]) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		if fn != nil {
			c.onEvict = append(c.onEvict, fn)
		}
	}
}
