package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"roomfinder/internal/infra/cache"
	"roomfinder/internal/pkg/config"
	"roomfinder/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAreaCache,
	),
)

// NewAreaCache falls back to a cache that always misses when redis is disabled.
func NewAreaCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (queries.AreaCache, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, area catalogue is not cached")
		return queries.NoopAreaCache{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return cache.NewAreaCache(rdb, "", cfg.Redis.AreaTTL), nil
}
