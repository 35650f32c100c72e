package sharded

import "github.com/dmitrymomot/cachekit/cache"

// Option is a functional option for configuring the sharded cache at
// construction.
type Option[V any] func(*options[V])

type options[V any] struct {
	shardOpts []cache.Option[string, V]
}

func newOptions[V any](opts ...Option[V]) *options[V] {
	cfg := &options[V]{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithEvictCallback registers an eviction subscriber on every shard at
// construction time.
func WithEvictCallback[V any](fn cache.EvictCallback[string, V]) Option[V] {
	return func(o *options[V]) {
		o.shardOpts = append(o.shardOpts, cache.WithEvictCallback(fn))
	}
}
