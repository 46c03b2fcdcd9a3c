//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/infra"
	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/pkg/errs"
	"roomfinder/internal/usecase/queries"
	"roomfinder/tests/common/builder"
	queriesmock "roomfinder/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func TestCheckAccess(t *testing.T) {
	userID := uuid.New()

	setup := func(t *testing.T) (*queriesmock.MockGrantReadStore, queries.AccessQueries) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockGrantReadStore(ctrl)
		return store, queries.NewAccessQueries(store, clock.NewMockClock(fixedNow))
	}

	t.Run("live grant gives access", func(t *testing.T) {
		store, q := setup(t)
		g := builder.NewGrantBuilder().ForUser(userID).WithConsumed(2).BuildReadModel()
		store.EXPECT().FindLiveByArea(gomock.Any(), userID, "Mumbai", fixedNow).Return(g, nil).Times(1)

		state, err := q.CheckAccess(context.Background(), userID, " Mumbai ")
		require.NoError(t, err)
		assert.True(t, state.HasAccess)
		assert.Equal(t, "Mumbai", state.Area)
		assert.Same(t, g, state.Grant)
		assert.Equal(t, 3, state.Remaining)
		// expires 2025-03-04 10:00, exactly two days out
		assert.Equal(t, 2, state.DaysRemaining)
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		store, q := setup(t)
		g := builder.NewGrantBuilder().ForUser(userID).ExpiringAt(fixedNow.Add(90 * time.Minute)).BuildReadModel()
		store.EXPECT().FindLiveByArea(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(g, nil).Times(1)

		state, err := q.CheckAccess(context.Background(), userID, "Mumbai")
		require.NoError(t, err)
		assert.Equal(t, 1, state.DaysRemaining)
	})

	t.Run("no grant is not an error", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindLiveByArea(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, notFound("grant not found")).Times(1)

		state, err := q.CheckAccess(context.Background(), userID, "Mumbai")
		require.NoError(t, err)
		assert.False(t, state.HasAccess)
		assert.Nil(t, state.Grant)
	})

	t.Run("stale rows never grant access", func(t *testing.T) {
		cases := map[string]*queries.GrantView{
			"expired":     builder.NewGrantBuilder().ForUser(userID).ExpiringAt(fixedNow).BuildReadModel(),
			"exhausted":   builder.NewGrantBuilder().ForUser(userID).WithConsumed(5).BuildReadModel(),
			"deactivated": builder.NewGrantBuilder().ForUser(userID).With(func(b *builder.GrantBuilder) { b.Active = false }).BuildReadModel(),
		}
		for name, g := range cases {
			t.Run(name, func(t *testing.T) {
				store, q := setup(t)
				store.EXPECT().FindLiveByArea(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(g, nil).Times(1)

				state, err := q.CheckAccess(context.Background(), userID, "Mumbai")
				require.NoError(t, err)
				assert.False(t, state.HasAccess)
			})
		}
	})

	t.Run("blank area is an invalid request", func(t *testing.T) {
		_, q := setup(t)

		_, err := q.CheckAccess(context.Background(), userID, "  ")
		assert.True(t, errs.Is(err, grant.ErrInvalidRequest))
	})

	t.Run("database failure propagates", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindLiveByArea(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to find grant", errors.New("timeout"))).Times(1)

		_, err := q.CheckAccess(context.Background(), userID, "Mumbai")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestViewingAccess(t *testing.T) {
	userID := uuid.New()

	setup := func(t *testing.T) (*queriesmock.MockGrantReadStore, queries.AccessQueries) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockGrantReadStore(ctrl)
		return store, queries.NewAccessQueries(store, clock.NewMockClock(fixedNow))
	}

	t.Run("exhausted grant keeps its pinned set readable", func(t *testing.T) {
		store, q := setup(t)
		g := builder.NewGrantBuilder().ForUser(userID).WithConsumed(5).BuildReadModel()
		store.EXPECT().FindUnexpiredByArea(gomock.Any(), userID, "Mumbai", fixedNow).Return(g, nil).Times(1)

		state, err := q.ViewingAccess(context.Background(), userID, "Mumbai")
		require.NoError(t, err)
		assert.Same(t, g, state.Grant)
		assert.False(t, state.HasAccess)
		assert.Equal(t, 0, state.Remaining)
	})

	t.Run("live grant", func(t *testing.T) {
		store, q := setup(t)
		g := builder.NewGrantBuilder().ForUser(userID).WithConsumed(1).BuildReadModel()
		store.EXPECT().FindUnexpiredByArea(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(g, nil).Times(1)

		state, err := q.ViewingAccess(context.Background(), userID, "Mumbai")
		require.NoError(t, err)
		assert.True(t, state.HasAccess)
		assert.Equal(t, 4, state.Remaining)
	})

	t.Run("expired or deactivated rows are ignored", func(t *testing.T) {
		cases := map[string]*queries.GrantView{
			"expired":     builder.NewGrantBuilder().ForUser(userID).ExpiringAt(fixedNow).BuildReadModel(),
			"deactivated": builder.NewGrantBuilder().ForUser(userID).With(func(b *builder.GrantBuilder) { b.Active = false }).BuildReadModel(),
		}
		for name, g := range cases {
			t.Run(name, func(t *testing.T) {
				store, q := setup(t)
				store.EXPECT().FindUnexpiredByArea(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(g, nil).Times(1)

				state, err := q.ViewingAccess(context.Background(), userID, "Mumbai")
				require.NoError(t, err)
				assert.Nil(t, state.Grant)
				assert.False(t, state.HasAccess)
			})
		}
	})

	t.Run("no grant is not an error", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindUnexpiredByArea(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, notFound("grant not found")).Times(1)

		state, err := q.ViewingAccess(context.Background(), userID, "Mumbai")
		require.NoError(t, err)
		assert.Nil(t, state.Grant)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindUnexpiredByArea(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down")).Times(1)

		_, err := q.ViewingAccess(context.Background(), userID, "Mumbai")
		assert.Error(t, err)
	})
}

func TestAccessibleListings(t *testing.T) {
	userID := uuid.New()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockGrantReadStore(ctrl)
	q := queries.NewAccessQueries(store, clock.NewMockClock(fixedNow))

	t.Run("returns the pinned set in rank order", func(t *testing.T) {
		g := builder.NewGrantBuilder().ForUser(userID).BuildReadModel()
		d1, d2 := 0.5, 1.2
		pinned := []*queries.PinnedListingView{
			builder.NewListingBuilder().BuildPinned(1, &d1),
			builder.NewListingBuilder().BuildPinned(2, &d2),
		}
		store.EXPECT().FindLiveByArea(gomock.Any(), userID, "Mumbai", fixedNow).Return(g, nil).Times(1)
		store.EXPECT().ListPinned(gomock.Any(), g.ID).Return(pinned, nil).Times(1)

		result, err := q.AccessibleListings(context.Background(), userID, "Mumbai")
		require.NoError(t, err)
		assert.True(t, result.HasActivePlan)
		assert.Equal(t, pinned, result.Listings)
	})

	t.Run("without a grant the list is empty", func(t *testing.T) {
		store.EXPECT().FindLiveByArea(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, notFound("grant not found")).Times(1)

		result, err := q.AccessibleListings(context.Background(), userID, "Pune")
		require.NoError(t, err)
		assert.False(t, result.HasActivePlan)
		assert.NotNil(t, result.Listings)
		assert.Empty(t, result.Listings)
	})
}
