package cache

import (
	"context"
	"time"
)

// Cache is the contract the domain services program against. The concrete
// implementation lives in internal/infrastructure/cache.
type Cache interface {
	// Get unmarshals the cached value into dest. The boolean reports a hit;
	// on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob-style pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
