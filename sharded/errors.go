package sharded

import "errors"

var (
	// ErrInvalidShards is returned when a constructor receives a zero or
	// negative shard count.
	ErrInvalidShards = errors.New("shard count must be positive")
	// ErrNilLoader is returned by GetOrLoad when no loader is supplied.
	ErrNilLoader = errors.New("loader must not be nil")
	// ErrInvalidConfig is returned when environment configuration cannot be parsed.
	ErrInvalidConfig = errors.New("invalid sharded cache configuration")
)
