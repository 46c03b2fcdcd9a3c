package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"roomfinder/internal/usecase/commands"
)

const sweepTimeout = time.Minute

// Sweeper runs the expiry sweep on a cron schedule. Overlapping runs are skipped.
type Sweeper struct {
	cron     *cron.Cron
	sweeper  commands.SweeperCommands
	schedule string
	entryID  cron.EntryID
}

func NewSweeper(sweeper commands.SweeperCommands, schedule string) (*Sweeper, error) {
	logger := slogCronLogger{logger: slog.Default().With("component", "sweeper")}
	c := cron.New(cron.WithChain(
		cron.Recover(logger),
		cron.SkipIfStillRunning(logger),
	), cron.WithLogger(logger))

	s := &Sweeper{cron: c, sweeper: sweeper, schedule: schedule}
	id, err := c.AddFunc(schedule, s.runOnce)
	if err != nil {
		return nil, fmt.Errorf("invalid sweeper schedule %q: %w", schedule, err)
	}
	s.entryID = id
	return s, nil
}

func (s *Sweeper) Start() {
	slog.Info("starting expiry sweeper", "schedule", s.schedule)
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to end.
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("expiry sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Errors are logged by the command; the next tick retries.
func (s *Sweeper) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	_, _ = s.sweeper.SweepExpired(ctx)
}

type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err.Error())...)
}
