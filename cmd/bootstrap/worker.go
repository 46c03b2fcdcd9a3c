package bootstrap

import (
	"context"
	"log/slog"

	"roomfinder/internal/pkg/config"
	"roomfinder/internal/usecase/commands"
	"roomfinder/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartSweeper),
)

func StartSweeper(lc fx.Lifecycle, cfg config.Config, sweeperCommands commands.SweeperCommands, logger *slog.Logger) error {
	if !cfg.Sweeper.Enabled {
		logger.Info("expiry sweeper disabled")
		return nil
	}

	sweeper, err := worker.NewSweeper(sweeperCommands, cfg.Sweeper.Schedule)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
	return nil
}
