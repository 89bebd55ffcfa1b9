package language

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"vantala-vaani/internal/infrastructure/config"
	"vantala-vaani/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TranslationCache memoizes successful machine translations so each
// distinct text is sent to the external service at most once. When a
// Redis address is configured and reachable the cache is shared across
// processes; otherwise it degrades to an in-process map with TTL
// eviction.
type TranslationCache struct {
	config *config.Config
	rdb    *redis.Client
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
}

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewTranslationCache creates the cache, probing Redis once at startup.
// Returns nil when caching is disabled.
func NewTranslationCache(cfg *config.Config) *TranslationCache {
	if !cfg.Cache.Enabled {
		common.LogInfo("translation cache disabled")
		return nil
	}

	c := &TranslationCache{
		config: cfg,
		store:  make(map[string]cacheEntry),
	}

	if cfg.Cache.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			common.LogWarn("redis unreachable, using in-memory translation cache",
				zap.String("addr", cfg.Cache.RedisAddr),
				zap.Error(err),
			)
			_ = rdb.Close()
		} else {
			c.rdb = rdb
		}
	}

	if c.rdb == nil {
		go c.startCleanup()
	}

	common.LogInfo("translation cache initialized",
		zap.Bool("redis", c.rdb != nil),
		zap.Int("max_size", cfg.Cache.MaxSize),
		zap.Duration("ttl", cfg.Cache.TTL),
	)

	return c
}

// ErrCacheMiss reports that a text has no cached translation.
var ErrCacheMiss = errors.New("translation not cached")

// Get returns the cached translation for text. A disabled cache yields
// common.ErrCacheDisabled; an uncached text yields ErrCacheMiss.
func (c *TranslationCache) Get(ctx context.Context, text string) (string, error) {
	if c == nil {
		return "", common.ErrCacheDisabled
	}

	key := c.cacheKey(text)

	if c.rdb != nil {
		val, err := c.rdb.Get(ctx, key).Result()
		if err == nil && val != "" {
			c.recordHit()
			common.LogCacheHit("translation", key)
			return val, nil
		}
		c.recordMiss()
		common.LogCacheMiss("translation", key)
		if err != nil && err != redis.Nil {
			return "", err
		}
		return "", ErrCacheMiss
	}

	c.mu.RLock()
	entry, exists := c.store[key]
	c.mu.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		c.recordMiss()
		common.LogCacheMiss("translation", key)
		return "", ErrCacheMiss
	}

	c.recordHit()
	common.LogCacheHit("translation", key)
	return entry.value, nil
}

// Set stores a translation for text.
func (c *TranslationCache) Set(ctx context.Context, text, translated string) error {
	if c == nil {
		return common.ErrCacheDisabled
	}

	key := c.cacheKey(text)

	if c.rdb != nil {
		return c.rdb.Set(ctx, key, translated, c.config.Cache.TTL).Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.config.Cache.MaxSize {
		evicted := c.cleanupLocked()
		if evicted == 0 {
			// cache full of live entries, skip storing
			return nil
		}
	}

	c.store[key] = cacheEntry{
		value:     translated,
		expiresAt: time.Now().Add(c.config.Cache.TTL),
	}
	return nil
}

func (c *TranslationCache) cacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return fmt.Sprintf("translate:te:%s", hex.EncodeToString(hash[:]))
}

func (c *TranslationCache) recordHit() {
	c.mu.Lock()
	c.stats.hits++
	c.mu.Unlock()
}

func (c *TranslationCache) recordMiss() {
	c.mu.Lock()
	c.stats.misses++
	c.mu.Unlock()
}

func (c *TranslationCache) startCleanup() {
	ticker := time.NewTicker(c.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		c.cleanupLocked()
		c.mu.Unlock()
	}
}

func (c *TranslationCache) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
			count++
			c.stats.evictions++
		}
	}
	return count
}

// Stats reports cache counters for the stats endpoint and the report.
func (c *TranslationCache) Stats() map[string]interface{} {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"backend":   c.backendName(),
		"size":      len(c.store),
		"hits":      c.stats.hits,
		"misses":    c.stats.misses,
		"evictions": c.stats.evictions,
	}
}

func (c *TranslationCache) backendName() string {
	if c.rdb != nil {
		return "redis"
	}
	return "memory"
}

// Close releases the Redis connection if one is held.
func (c *TranslationCache) Close() error {
	if c == nil {
		return nil
	}
	if c.rdb != nil {
		return c.rdb.Close()
	}
	c.mu.Lock()
	c.store = make(map[string]cacheEntry)
	c.mu.Unlock()
	return nil
}
