//go:build unit

package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	commandsmock "roomfinder/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewSweeper(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeps := commandsmock.NewMockSweeperCommands(ctrl)

	t.Run("accepts descriptors and cron specs", func(t *testing.T) {
		for _, spec := range []string{"@every 5m", "*/10 * * * *", "@hourly"} {
			s, err := NewSweeper(sweeps, spec)
			require.NoError(t, err, spec)
			assert.NotZero(t, s.entryID)
		}
	})

	t.Run("rejects a malformed schedule", func(t *testing.T) {
		_, err := NewSweeper(sweeps, "every five minutes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sweeper schedule")
	})
}

func TestSweeperRunOnce(t *testing.T) {
	t.Run("runs the sweep with a deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweeps := commandsmock.NewMockSweeperCommands(ctrl)
		sweeps.EXPECT().SweepExpired(gomock.Any()).DoAndReturn(func(ctx context.Context) (int64, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(sweepTimeout), deadline, 5*time.Second)
			return 2, nil
		})

		s, err := NewSweeper(sweeps, "@every 5m")
		require.NoError(t, err)
		s.runOnce()
	})

	t.Run("errors do not escape the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweeps := commandsmock.NewMockSweeperCommands(ctrl)
		sweeps.EXPECT().SweepExpired(gomock.Any()).Return(int64(0), errors.New("db down"))

		s, err := NewSweeper(sweeps, "@every 5m")
		require.NoError(t, err)
		assert.NotPanics(t, s.runOnce)
	})
}

func TestSweeperStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeps := commandsmock.NewMockSweeperCommands(ctrl)
	sweeps.EXPECT().SweepExpired(gomock.Any()).Return(int64(0), nil).AnyTimes()

	s, err := NewSweeper(sweeps, "@every 1h")
	require.NoError(t, err)

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}
