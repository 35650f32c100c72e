package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// EvictCallback is invoked with the key and value of an entry removed by
// capacity pressure. Callbacks run synchronously on the goroutine that
// triggered the eviction, after the entry has been unlinked and with the
// cache's internal lock released, so a callback may safely call back into
// the cache. A panicking callback propagates to the caller of the
// triggering operation.
type EvictCallback[K comparable, V any] func(key K, value V)

// entry is the payload stored in each list element. The key is kept
// alongside the value so tail eviction can delete from the index without
// a reverse lookup.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache is a fixed-capacity, thread-safe cache with least-recently-used
// eviction. Lookups go through a map of list elements; recency is tracked
// by a doubly-linked list with the most recently used entry at the front.
// Both structures are guarded by one mutex and mutated together, so no
// caller ever observes them out of sync.
type LRUCache[K comparable, V any] struct {
	mu       sync.RWMutex
	capacity int
	items    map[K]*list.Element
	order    *list.List // front = most recently used, back = eviction candidate
	onEvict  []EvictCallback[K, V]

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewLRUCache creates a cache that holds at most capacity entries.
// Returns ErrInvalidCapacity if capacity is zero or negative.
func NewLRUCache[K comparable, V any](capacity int, opts ...Option[K, V]) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	c := &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Put stores a value under key, marking it as most recently used. If the
// key already exists its value is replaced in place and nothing is evicted.
// Inserting a new key into a full cache evicts the least recently used
// entry first; eviction callbacks complete before the new entry is inserted,
// so observers never see the evicted entry and its replacement coexist.
func (c *LRUCache[K, V]) Put(key K, value V) {
	for {
		c.mu.Lock()
		if el, ok := c.items[key]; ok {
			el.Value.(*entry[K, V]).value = value
			c.order.MoveToFront(el)
			c.mu.Unlock()
			return
		}
		if c.order.Len() < c.capacity {
			c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
			c.mu.Unlock()
			return
		}
		// Full. Evict the tail, notify outside the lock, then retry the
		// insert; another writer may have claimed the freed slot meanwhile.
		k, v, subscribers := c.evictOldestLocked()
		c.mu.Unlock()
		notify(subscribers, k, v)
	}
}

// Get returns the value stored under key and marks it as most recently
// used. The recency bump happens on every hit, not only on writes, so Get
// takes the write lock. A miss returns the zero value and false; it is a
// normal outcome, not an error.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	el, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	value := el.Value.(*entry[K, V]).value
	c.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Peek returns the value stored under key without updating its recency
// and without touching the hit/miss counters.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if el, ok := c.items[key]; ok {
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present without updating its recency.
func (c *LRUCache[K, V]) Contains(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.items[key]
	return ok
}

// Remove deletes key from the cache and returns its value. Explicit
// removal is not an eviction: no callbacks fire.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.Remove(el)
	delete(c.items, key)
	return el.Value.(*entry[K, V]).value, true
}

// Clear drops every entry. Like Remove, it fires no eviction callbacks.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

// Len returns the number of entries currently held. Always <= Capacity.
func (c *LRUCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.order.Len()
}

// Capacity returns the current capacity limit.
func (c *LRUCache[K, V]) Capacity() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.capacity
}

// Resize changes the capacity limit and returns the number of entries
// evicted. Shrinking below the current length evicts least-recently-used
// entries, firing callbacks for each, until the cache fits; the stored
// capacity is updated only after the eviction loop completes, so readers
// never observe a limit smaller than the entries actually removed. Growing
// never evicts. Returns ErrInvalidCapacity, without mutating anything, if
// capacity is zero or negative.
func (c *LRUCache[K, V]) Resize(capacity int) (int, error) {
	if capacity <= 0 {
		return 0, ErrInvalidCapacity
	}

	evicted := 0
	for {
		c.mu.Lock()
		if c.order.Len() <= capacity {
			c.capacity = capacity
			c.mu.Unlock()
			return evicted, nil
		}
		k, v, subscribers := c.evictOldestLocked()
		c.mu.Unlock()
		notify(subscribers, k, v)
		evicted++
	}
}

// OnEvicted subscribes a callback to eviction events. Subscribers are
// invoked in subscription order, exactly once per evicted entry.
func (c *LRUCache[K, V]) OnEvicted(fn EvictCallback[K, V]) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onEvict = append(c.onEvict, fn)
}

// evictOldestLocked unlinks the least recently used entry and returns it
// together with a snapshot of the current subscribers. Callers must hold
// the write lock and must not be called on an empty cache.
func (c *LRUCache[K, V]) evictOldestLocked() (K, V, []EvictCallback[K, V]) {
	el := c.order.Back()
	e := el.Value.(*entry[K, V])
	c.order.Remove(el)
	delete(c.items, e.key)
	c.evictions.Add(1)
	return e.key, e.value, c.onEvict
}

// notify fires the subscriber snapshot for one evicted entry. Runs with
// the cache lock released.
func notify[K comparable, V any](subscribers []EvictCallback[K, V], key K, value V) {
	for _, fn := range subscribers {
		fn(key, value)
	}
}
