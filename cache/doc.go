// Package cache provides a thread-safe, generic LRU (Least Recently Used)
// cache with a fixed but runtime-adjustable capacity. When an insert would
// exceed capacity, the entry whose most recent access is oldest is evicted,
// and every operation — lookup, insert, update, eviction — runs in O(1).
//
// # Features
//
//   - Generic type parameters for compile-time type safety
//   - Thread-safe operations; safe for concurrent use without external locking
//   - Recency updated on every read, not only on writes
//   - Runtime capacity changes via Resize, with batch eviction on shrink
//   - Eviction callbacks with multiple subscribers, invoked in subscription order
//   - Hit/miss/eviction counters exposed via Stats
//   - Environment-driven construction via Config and NewFromEnv
//
// # Usage
//
// Create a cache with a capacity of 100 items:
//
//	c, err := cache.NewLRUCache[string, *User](100)
//	if err != nil {
//		return err
//	}
//
//	c.Put("user:123", &User{ID: 123, Name: "John"})
//
//	if user, found := c.Get("user:123"); found {
//		fmt.Println(user.Name)
//	}
//
// A missing key is a normal outcome, not an error:
//
//	if _, found := c.Get("user:999"); !found {
//		// load from the source of truth
//	}
//
// # Eviction Callbacks
//
// Subscribe to eviction events to clean up resources held by evicted
// values. Callbacks fire synchronously on the goroutine that triggered the
// eviction, after the entry has been removed and with the internal lock
// released, so the cache may be re-entered from inside a callback:
//
//	connections, _ := cache.NewLRUCache[string, net.Conn](50)
//	connections.OnEvicted(func(key string, conn net.Conn) {
//		conn.Close()
//	})
//
// Multiple subscribers are allowed and run in subscription order. An
// initial subscriber can also be attached at construction:
//
//	c, err := cache.NewLRUCache[string, []byte](100,
//		cache.WithEvictCallback(writeBack))
//
// The cache does not recover from a panicking callback; a failing observer
// is the host application's concern.
//
// # Capacity
//
// Capacity must be positive; NewLRUCache and Resize return
// ErrInvalidCapacity otherwise, without mutating the cache. Shrinking a
// full cache evicts least-recently-used entries (firing callbacks for
// each) until it fits; growing never evicts:
//
//	evicted, err := c.Resize(10)
//
// # Configuration
//
// For services that size caches from the environment:
//
//	// Reads CACHE_CAPACITY, defaulting to 5.
//	c, err := cache.NewFromEnv[string, Page]()
//
// # Observability
//
// Stats returns a snapshot of hit, miss, and eviction counters along with
// the current length and capacity:
//
//	s := c.Stats()
//	ratio := float64(s.Hits) / float64(s.Hits+s.Misses)
//
// # Performance Characteristics
//
// The implementation pairs a hash map with a doubly-linked list, giving
// O(1) Get, Put, and Remove and O(capacity) memory. Get takes the write
// lock, since every hit reorders recency; Peek and Contains take the read
// lock and leave recency untouched.
package cache
