package cache

// Stats is a point-in-time snapshot of cache activity, for monitoring and
// capacity planning. Hits and misses count Get calls only; Peek and
// Contains do not touch the counters.
type Stats struct {
	Hits      int64 // Successful Get lookups
	Misses    int64 // Get lookups for absent keys
	Evictions int64 // Entries removed by capacity pressure
	Len       int   // Current number of entries
	Capacity  int   // Current capacity limit
}

// Stats returns current cache statistics. Thread-safe; counters and the
// Len/Capacity pair are each internally consistent, though the two groups
// are read without a common lock.
func (c *LRUCache[K, V]) Stats() Stats {
	c.mu.RLock()
	length := c.order.Len()
	capacity := c.capacity
	c.mu.RUnlock()

	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Len:       length,
		Capacity:  capacity,
	}
}
