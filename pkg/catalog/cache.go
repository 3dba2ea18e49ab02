package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

const DefaultLocalLimit = 4096

// Cache memoizes query results by key.
type Cache interface {
	Get(ctx context.Context, key string, out any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type localEntry struct {
	expires time.Time
	data    []byte
}

// RedisCache is a redis backed cache with a short lived local layer in front.
type RedisCache struct {
	client   *redis.Client
	prefix   string
	localTTL time.Duration
	// localLimit caps the number of entries held in memCache.
	localLimit int
	mu         sync.RWMutex
	memCache   map[string]localEntry
}

func NewRedisCache(addr, password string, db int) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{
		client:     rdb,
		prefix:     "storefront:",
		localTTL:   time.Minute,
		localLimit: DefaultLocalLimit,
		memCache:   make(map[string]localEntry),
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string, out any) error {
	c.mu.RLock()
	local, found := c.memCache[key]
	c.mu.RUnlock()
	if found {
		if time.Now().Before(local.expires) {
			return sonic.Unmarshal(local.data, out)
		}
		c.mu.Lock()
		delete(c.memCache, key)
		c.mu.Unlock()
	}

	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	if err = sonic.Unmarshal(data, out); err != nil {
		return err
	}
	c.remember(key, data, c.localTTL)
	return nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	ttl := c.localTTL
	if expiration > 0 {
		ttl = min(expiration, ttl)
	}
	c.remember(key, data, ttl)
	return c.client.Set(ctx, c.prefix+key, data, expiration).Err()
}

// remember stores data in the local layer. A full layer is swept of expired
// entries first and cleared if that frees nothing.
func (c *RedisCache) remember(key string, data []byte, ttl time.Duration) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.memCache[key]; !ok && len(c.memCache) >= c.localLimit {
		for k, e := range c.memCache {
			if !now.Before(e.expires) {
				delete(c.memCache, k)
			}
		}
		if len(c.memCache) >= c.localLimit {
			clear(c.memCache)
		}
	}
	c.memCache[key] = localEntry{expires: now.Add(ttl), data: data}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
