package lib

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"

	"github.com/top-system/light-news/constants"
	"github.com/top-system/light-news/errors"
)

// RedisCache implements Cache interface using Redis
type RedisCache struct {
	cache  *cache.Cache
	client *redis.Client
	prefix string
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(config Config, logger Logger) *RedisCache {
	addr := config.Cache.Addr()

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		DB:       constants.RedisMainDB,
		Password: config.Cache.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Zap.Fatalf("Failed to connect to Redis[%s]: %v", addr, err)
	}

	logger.Zap.Info("Redis cache connection established")
	return &RedisCache{
		client: client,
		prefix: config.Cache.KeyPrefix,
		cache: cache.New(&cache.Options{
			Redis:      client,
			LocalCache: cache.NewTinyLFU(1000, time.Minute),
		}),
	}
}

func (r *RedisCache) wrapperKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

func (r *RedisCache) wrapperKeys(keys []string) []string {
	wrapped := make([]string, len(keys))
	for i, key := range keys {
		wrapped[i] = r.wrapperKey(key)
	}
	return wrapped
}

// Set stores a value with expiration
// Local cache is skipped so a revoked token is seen by every instance.
func (r *RedisCache) Set(key string, value interface{}, expiration time.Duration) error {
	return r.cache.Set(&cache.Item{
		Ctx:            context.TODO(),
		Key:            r.wrapperKey(key),
		Value:          value,
		TTL:            expiration,
		SkipLocalCache: true,
	})
}

// Get retrieves a value by key
func (r *RedisCache) Get(key string, value interface{}) error {
	err := r.cache.Get(context.TODO(), r.wrapperKey(key), value)
	if err == cache.ErrCacheMiss {
		return errors.CacheKeyNotExist
	}
	return err
}

// Delete removes keys from cache
func (r *RedisCache) Delete(keys ...string) (bool, error) {
	cmd := r.client.Del(context.TODO(), r.wrapperKeys(keys)...)
	if err := cmd.Err(); err != nil {
		return false, err
	}

	return cmd.Val() > 0, nil
}

// Check verifies if keys exist
func (r *RedisCache) Check(keys ...string) (bool, error) {
	cmd := r.client.Exists(context.TODO(), r.wrapperKeys(keys)...)
	if err := cmd.Err(); err != nil {
		return false, err
	}
	return cmd.Val() > 0, nil
}

// Close closes the Redis connection
func (r *RedisCache) Close() error {
	return r.client.Close()
}
