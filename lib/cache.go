package lib

import (
	"time"
)

// Cache defines the interface for cache operations
// Supports both Redis and Memory cache implementations
type Cache interface {
	// Set stores a value with expiration
	Set(key string, value interface{}, expiration time.Duration) error

	// Get retrieves a value by key
	Get(key string, value interface{}) error

	// Delete removes keys from cache
	Delete(keys ...string) (bool, error)

	// Check verifies if keys exist
	Check(keys ...string) (bool, error)

	// Close closes the cache connection
	Close() error
}

// NewCache creates a cache instance based on configuration
// If type is "redis", returns RedisCache; otherwise returns MemoryCache
func NewCache(config Config, logger Logger) Cache {
	if config.Cache.IsRedis() {
		return NewRedisCache(config, logger)
	}
	return NewMemoryCache(config, logger)
}
