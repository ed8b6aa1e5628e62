package common

import (
	"os"

	"github.com/pfjetdev/pfjet-sub000/internal/logging"
)

// NewCacheBackend picks the cache implementation from the environment:
// Redis when REDIS_HOST is set and reachable, in-memory otherwise.
// Falling back keeps a single-instance deploy working with no Redis at
// all, which is the common case for the marketing site.
func NewCacheBackend(defaultExpirationSeconds, cleanUpIntervalSeconds int) CacheInterface {
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := NewRedisCacheService()
		if err == nil {
			logging.Info("cache backend: redis")
			return redisCache
		}
		logging.Warn("cache backend: redis unavailable, falling back to in-memory",
			"error", err.Error())
	}
	logging.Info("cache backend: in-memory")
	return NewCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds)
}
