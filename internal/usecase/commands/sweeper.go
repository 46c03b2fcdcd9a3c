package commands

import (
	"context"
	"log/slog"
	"time"

	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/pkg/metrics"
	"roomfinder/internal/usecase/shared"
)

type SweeperCommands interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type sweeperCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSweeperCommands(uow shared.UnitOfWork, clk clock.Clock) SweeperCommands {
	return &sweeperCommandsImpl{uow: uow, clock: clk}
}

// SweepExpired flips active=false on grants past their expiry. Re-running it is a no-op.
func (uc *sweeperCommandsImpl) SweepExpired(ctx context.Context) (int64, error) {
	start := time.Now()
	defer func() {
		metrics.SweeperDuration.Observe(time.Since(start).Seconds())
	}()

	var deactivated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Grants().DeactivateExpired(ctx, tx.DB(), uc.clock.Now())
		if derr != nil {
			return derr
		}
		deactivated = n
		return nil
	})
	if err != nil {
		metrics.SweeperRuns.WithLabelValues("error").Inc()
		slog.Error("expiry sweep failed", "error", err.Error())
		return 0, err
	}

	metrics.SweeperRuns.WithLabelValues("success").Inc()
	metrics.SweeperDeactivated.Add(float64(deactivated))
	slog.Info("expiry sweep completed", "deactivated", deactivated)
	return deactivated, nil
}
