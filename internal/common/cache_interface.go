package common

import "time"

// CacheInterface is the contract for the time-boxed catalog cache.
// Values set with a duration may be served until the window elapses;
// races on recompute are harmless because every cached value is
// idempotently recomputable from the store.
type CacheInterface interface {
	Set(key string, value interface{}, duration time.Duration)

	Get(key string) (interface{}, bool)

	Delete(key string)

	// GetOrSet returns the cached value, or runs loader and caches its
	// result for duration. Loader errors are returned uncached.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any underlying connections (Redis).
	Close() error
}
