package cache

import "errors"

var (
	// ErrInvalidCapacity is returned when a constructor or Resize receives
	// a zero or negative capacity.
	ErrInvalidCapacity = errors.New("cache capacity must be positive")
	// ErrInvalidConfig is returned when environment configuration cannot be parsed.
	ErrInvalidConfig = errors.New("invalid cache configuration")
)
