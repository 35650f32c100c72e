package cache

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultCapacity is the capacity used when none is configured.
const DefaultCapacity = 5

// Config holds cache configuration loadable from the environment.
type Config struct {
	Capacity int `env:"CACHE_CAPACITY" envDefault:"5"`
}

// NewFromConfig creates a cache from a Config. Validation is the same as
// NewLRUCache: a non-positive capacity yields ErrInvalidCapacity.
func NewFromConfig[K comparable, V any](cfg Config, opts ...Option[K, V]) (*LRUCache[K, V], error) {
	return NewLRUCache[K, V](cfg.Capacity, opts...)
}

// NewFromEnv creates a cache configured from environment variables.
func NewFromEnv[K comparable, V any](opts ...Option[K, V]) (*LRUCache[K, V], error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return NewFromConfig[K, V](cfg, opts...)
}
