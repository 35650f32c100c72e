// Package sharded provides a string-keyed LRU cache partitioned across
// independently locked shards, for workloads where a single cache mutex
// becomes a contention point.
//
// Keys are assigned to shards by xxhash, the shard count is rounded up to
// a power of two, and the total capacity is split evenly across shards.
// Each shard is a cache.LRUCache, so recency ordering and eviction are
// per-shard rather than global — a skewed key distribution can evict a
// shard's entries while other shards have room. For small caches or
// single-writer workloads, prefer the cache package directly.
//
// # Usage
//
//	c, err := sharded.New[[]byte](10_000, 16)
//	if err != nil {
//		return err
//	}
//
//	c.Put("article:42", body)
//	if body, found := c.Get("article:42"); found {
//		// serve from cache
//	}
//
// # Read-Through Loading
//
// GetOrLoad coalesces concurrent misses for the same key into a single
// loader call; every waiting caller shares the result. Loader errors are
// never cached:
//
//	body, err := c.GetOrLoad(ctx, "article:42", func(ctx context.Context, key string) ([]byte, error) {
//		return fetchArticle(ctx, key)
//	})
//
// # Configuration
//
//	// Reads CACHE_CAPACITY and CACHE_SHARDS from the environment.
//	c, err := sharded.NewFromEnv[[]byte]()
package sharded
