package lib

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/top-system/light-news/errors"
)

// cacheItem represents a cached item with expiration
type cacheItem struct {
	Value      []byte
	Expiration int64 // Unix timestamp in nanoseconds, 0 means no expiration
}

// isExpired checks if the item has expired
func (item cacheItem) isExpired(now int64) bool {
	return item.Expiration > 0 && now > item.Expiration
}

// MemoryCache implements Cache interface using in-memory storage
type MemoryCache struct {
	items    sync.Map
	prefix   string
	logger   Logger
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewMemoryCache creates a new memory cache instance
func NewMemoryCache(config Config, logger Logger) *MemoryCache {
	mc := &MemoryCache{
		prefix: config.Cache.KeyPrefix,
		logger: logger,
		stopCh: make(chan struct{}),
	}

	// Start cleanup goroutine
	go mc.cleanupLoop()

	logger.Zap.Info("Memory cache initialized")
	return mc
}

// cleanupLoop periodically removes expired items
func (m *MemoryCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stopCh:
			return
		}
	}
}

// cleanup removes expired items from cache
func (m *MemoryCache) cleanup() {
	now := time.Now().UnixNano()

	m.items.Range(func(key, value interface{}) bool {
		if value.(cacheItem).isExpired(now) {
			m.items.Delete(key)
		}
		return true
	})
}

func (m *MemoryCache) wrapperKey(key string) string {
	if m.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", m.prefix, key)
}

// load returns a live item, dropping it when expired
func (m *MemoryCache) load(key string) (cacheItem, bool) {
	v, ok := m.items.Load(key)
	if !ok {
		return cacheItem{}, false
	}

	item := v.(cacheItem)
	if item.isExpired(time.Now().UnixNano()) {
		m.items.Delete(key)
		return cacheItem{}, false
	}

	return item, true
}

// Set stores a value with expiration
func (m *MemoryCache) Set(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var exp int64
	if expiration > 0 {
		exp = time.Now().Add(expiration).UnixNano()
	}

	m.items.Store(m.wrapperKey(key), cacheItem{
		Value:      data,
		Expiration: exp,
	})

	return nil
}

// Get retrieves a value by key
func (m *MemoryCache) Get(key string, value interface{}) error {
	item, ok := m.load(m.wrapperKey(key))
	if !ok {
		return errors.CacheKeyNotExist
	}

	return json.Unmarshal(item.Value, value)
}

// Delete removes keys from cache
func (m *MemoryCache) Delete(keys ...string) (bool, error) {
	deleted := false
	for _, key := range keys {
		if _, loaded := m.items.LoadAndDelete(m.wrapperKey(key)); loaded {
			deleted = true
		}
	}
	return deleted, nil
}

// Check verifies if any of the keys exist
func (m *MemoryCache) Check(keys ...string) (bool, error) {
	for _, key := range keys {
		if _, ok := m.load(m.wrapperKey(key)); ok {
			return true, nil
		}
	}
	return false, nil
}

// Close stops the cleanup goroutine
func (m *MemoryCache) Close() error {
	m.stopOnce.Do(func() { close(m.stopCh) })
	return nil
}
