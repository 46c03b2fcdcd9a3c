package bootstrap

import (
	"context"
	"log/slog"

	"roomfinder/internal/infra/db"
	"roomfinder/internal/pkg/config"
	"roomfinder/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB applies pending migrations before opening the pool when MIGRATE_ON_START is set.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx := context.Background()

	if cfg.Migration.OnStart {
		if err := db.Migrate(ctx, cfg.DB.BuildDSN(), migrations.FS); err != nil {
			return nil, err
		}
	} else {
		logger.Info("skipping migrations on start")
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
