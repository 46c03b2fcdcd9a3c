//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"roomfinder/internal/infra"
	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweepExpired(t *testing.T) {
	t.Run("reports the number of deactivated grants", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUowMocks(ctrl)
		m.grants.EXPECT().DeactivateExpired(gomock.Any(), gomock.Any(), fixedNow).Return(int64(3), nil).Times(1)

		n, err := commands.NewSweeperCommands(m.uow, clock.NewMockClock(fixedNow)).SweepExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("second run finds nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUowMocks(ctrl)
		gomock.InOrder(
			m.grants.EXPECT().DeactivateExpired(gomock.Any(), gomock.Any(), fixedNow).Return(int64(2), nil),
			m.grants.EXPECT().DeactivateExpired(gomock.Any(), gomock.Any(), fixedNow).Return(int64(0), nil),
		)
		sweeper := commands.NewSweeperCommands(m.uow, clock.NewMockClock(fixedNow))

		first, err := sweeper.SweepExpired(context.Background())
		require.NoError(t, err)
		second, err := sweeper.SweepExpired(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(2), first)
		assert.Equal(t, int64(0), second)
	})

	t.Run("propagates database errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUowMocks(ctrl)
		m.grants.EXPECT().DeactivateExpired(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to deactivate grants", errors.New("deadlock"))).Times(1)

		n, err := commands.NewSweeperCommands(m.uow, clock.NewMockClock(fixedNow)).SweepExpired(context.Background())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Zero(t, n)
	})
}
