package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is an optional Redis-backed cache of rendered reports. A nil Cache or
// nil client disables caching; misses and Redis errors just mean recompute.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// Key builds the cache key for a rendered report. Revision changes whenever a
// dataset is re-normalized, so stale reports age out instead of being served.
func Key(datasetID string, revision int, from, to string) string {
	return fmt.Sprintf("asistencia:report:%s:%d:%s:%s", datasetID, revision, from, to)
}

func (c *Cache) Get(ctx context.Context, key string, out interface{}) bool {
	if c == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

func (c *Cache) Set(ctx context.Context, key string, val interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, data, c.ttl).Err()
}
