package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"roomfinder/internal/pkg/metrics"
)

const (
	defaultAreaKey = "roomfinder:areas"
	areaCacheName  = "areas"
)

// AreaCache keeps the distinct-city catalogue in redis as a JSON array.
type AreaCache struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewAreaCache(rdb *redis.Client, key string, ttl time.Duration) *AreaCache {
	if key == "" {
		key = defaultAreaKey
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &AreaCache{rdb: rdb, key: key, ttl: ttl}
}

func (c *AreaCache) Get(ctx context.Context) ([]string, bool, error) {
	val, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheLookups.WithLabelValues(areaCacheName, "miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.CacheLookups.WithLabelValues(areaCacheName, "error").Inc()
		return nil, false, err
	}

	var areas []string
	if err := json.Unmarshal(val, &areas); err != nil {
		metrics.CacheLookups.WithLabelValues(areaCacheName, "error").Inc()
		return nil, false, err
	}
	metrics.CacheLookups.WithLabelValues(areaCacheName, "hit").Inc()
	return areas, true, nil
}

func (c *AreaCache) Set(ctx context.Context, areas []string) error {
	if areas == nil {
		areas = []string{}
	}
	b, err := json.Marshal(areas)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key, b, c.ttl).Err()
}

func (c *AreaCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key).Err()
}
