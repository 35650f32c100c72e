package sharded

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds sharded cache configuration loadable from the environment.
type Config struct {
	Capacity int `env:"CACHE_CAPACITY" envDefault:"1024"`
	Shards   int `env:"CACHE_SHARDS" envDefault:"16"`
}

// NewFromConfig creates a sharded cache from a Config. Validation is the
// same as New.
func NewFromConfig[V any](cfg Config, opts ...Option[V]) (*Cache[V], error) {
	return New[V](cfg.Capacity, cfg.Shards, opts...)
}

// NewFromEnv creates a sharded cache configured from environment variables.
func NewFromEnv[V any](opts ...Option[V]) (*Cache[V], error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return NewFromConfig[V](cfg, opts...)
}
