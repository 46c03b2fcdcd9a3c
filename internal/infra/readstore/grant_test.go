//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"roomfinder/internal/infra"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/pkg/pgconv"
	"roomfinder/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGrantReadQueries struct {
	mock.Mock
}

func (m *MockGrantReadQueries) FindLiveGrantForArea(ctx context.Context, db sqlc.DBTX, arg sqlc.FindLiveGrantForAreaParams) (sqlc.Grants, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Grants), args.Error(1)
}

func (m *MockGrantReadQueries) FindUnexpiredGrantForArea(ctx context.Context, db sqlc.DBTX, arg sqlc.FindUnexpiredGrantForAreaParams) (sqlc.Grants, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Grants), args.Error(1)
}

func (m *MockGrantReadQueries) FindGrantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Grants, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Grants), args.Error(1)
}

func (m *MockGrantReadQueries) ListGrantsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListGrantsByUserRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]sqlc.ListGrantsByUserRow), args.Error(1)
}

func (m *MockGrantReadQueries) ListPinnedListingViews(ctx context.Context, db sqlc.DBTX, grantID uuid.UUID) ([]sqlc.ListPinnedListingViewsRow, error) {
	args := m.Called(ctx, db, grantID)
	return args.Get(0).([]sqlc.ListPinnedListingViewsRow), args.Error(1)
}

func TestFindLiveByArea(t *testing.T) {
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	row := builder.NewGrantBuilder().WithConsumed(2).BuildInfra()

	t.Run("maps the stored grant", func(t *testing.T) {
		mockQueries := new(MockGrantReadQueries)
		mockQueries.On("FindLiveGrantForArea", mock.Anything, mock.Anything, sqlc.FindLiveGrantForAreaParams{
			UserID: row.UserID,
			Area:   "Mumbai",
			Now:    pgconv.TimeToPgtype(now),
		}).Return(row, nil)

		view, err := NewGrantReadStore(mockQueries, nil).FindLiveByArea(context.Background(), row.UserID, "Mumbai", now)
		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, 5, view.Quantity)
		assert.Equal(t, 2, view.Consumed)
		assert.Equal(t, 40, view.PricePaid)
		assert.Equal(t, row.ExpiresAt.Time, view.ExpiresAt)
		assert.True(t, view.Active)
		mockQueries.AssertExpectations(t)
	})

	t.Run("no live grant is a not-found", func(t *testing.T) {
		mockQueries := new(MockGrantReadQueries)
		mockQueries.On("FindLiveGrantForArea", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Grants{}, pgx.ErrNoRows)

		view, err := NewGrantReadStore(mockQueries, nil).FindLiveByArea(context.Background(), row.UserID, "Mumbai", now)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestFindUnexpiredByArea(t *testing.T) {
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	row := builder.NewGrantBuilder().WithConsumed(5).BuildInfra()

	t.Run("returns an exhausted grant", func(t *testing.T) {
		mockQueries := new(MockGrantReadQueries)
		mockQueries.On("FindUnexpiredGrantForArea", mock.Anything, mock.Anything, sqlc.FindUnexpiredGrantForAreaParams{
			UserID: row.UserID,
			Area:   "Mumbai",
			Now:    pgconv.TimeToPgtype(now),
		}).Return(row, nil)

		view, err := NewGrantReadStore(mockQueries, nil).FindUnexpiredByArea(context.Background(), row.UserID, "Mumbai", now)
		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, 5, view.Consumed)
		assert.Equal(t, 0, view.Remaining())
		mockQueries.AssertExpectations(t)
	})

	t.Run("no unexpired grant is a not-found", func(t *testing.T) {
		mockQueries := new(MockGrantReadQueries)
		mockQueries.On("FindUnexpiredGrantForArea", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Grants{}, pgx.ErrNoRows)

		view, err := NewGrantReadStore(mockQueries, nil).FindUnexpiredByArea(context.Background(), row.UserID, "Mumbai", now)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestGrantFindByID(t *testing.T) {
	row := builder.NewGrantBuilder().BuildInfra()

	mockQueries := new(MockGrantReadQueries)
	mockQueries.On("FindGrantByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)
	mockQueries.On("FindGrantByID", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Grants{}, assert.AnError)

	store := NewGrantReadStore(mockQueries, nil)

	view, err := store.FindByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.Area, view.Area)

	_, err = store.FindByID(context.Background(), uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestListByUser(t *testing.T) {
	g := builder.NewGrantBuilder().BuildInfra()
	rows := []sqlc.ListGrantsByUserRow{{
		ID:            g.ID,
		UserID:        g.UserID,
		Area:          g.Area,
		Quantity:      g.Quantity,
		PricePaid:     g.PricePaid,
		OriginLat:     g.OriginLat,
		OriginLng:     g.OriginLng,
		PaymentStatus: g.PaymentStatus,
		Active:        g.Active,
		Consumed:      g.Consumed,
		CreatedAt:     g.CreatedAt,
		ExpiresAt:     g.ExpiresAt,
		PinnedCount:   4,
	}}

	mockQueries := new(MockGrantReadQueries)
	mockQueries.On("ListGrantsByUser", mock.Anything, mock.Anything, g.UserID).Return(rows, nil)

	views, err := NewGrantReadStore(mockQueries, nil).ListByUser(context.Background(), g.UserID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 4, views[0].PinnedCount)
	assert.Equal(t, "completed", views[0].PaymentStatus)
}

func TestListPinned(t *testing.T) {
	grantID := uuid.New()
	located := builder.NewListingBuilder().BuildInfraRow()
	unlocated := builder.NewListingBuilder().WithoutCoordinates().BuildInfraRow()

	toPinnedRow := func(rank int32, distance pgtype.Float8, l sqlc.FindListingViewByIDRow) sqlc.ListPinnedListingViewsRow {
		return sqlc.ListPinnedListingViewsRow{
			Rank:          rank,
			DistanceKm:    distance,
			ID:            l.ID,
			OwnerID:       l.OwnerID,
			Title:         l.Title,
			Description:   l.Description,
			Rent:          l.Rent,
			City:          l.City,
			Locality:      l.Locality,
			Latitude:      l.Latitude,
			Longitude:     l.Longitude,
			RoomType:      l.RoomType,
			GenderPref:    l.GenderPref,
			AvailableFrom: l.AvailableFrom,
			Available:     l.Available,
			CreatedAt:     l.CreatedAt,
			OwnerName:     l.OwnerName,
			OwnerEmail:    l.OwnerEmail,
			OwnerPhone:    l.OwnerPhone,
		}
	}

	mockQueries := new(MockGrantReadQueries)
	mockQueries.On("ListPinnedListingViews", mock.Anything, mock.Anything, grantID).Return([]sqlc.ListPinnedListingViewsRow{
		toPinnedRow(1, pgtype.Float8{Float64: 0.8, Valid: true}, located),
		toPinnedRow(2, pgtype.Float8{}, unlocated),
	}, nil)

	views, err := NewGrantReadStore(mockQueries, nil).ListPinned(context.Background(), grantID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, 1, views[0].Rank)
	require.NotNil(t, views[0].DistanceKm)
	assert.InDelta(t, 0.8, *views[0].DistanceKm, 1e-9)
	assert.Equal(t, located.ID, views[0].Listing.ID)
	assert.Equal(t, located.Description, views[0].Listing.Description)
	assert.Equal(t, located.OwnerEmail, views[0].Listing.Owner.Email)

	assert.Equal(t, 2, views[1].Rank)
	assert.Nil(t, views[1].DistanceKm)
	assert.Nil(t, views[1].Listing.Latitude)
}
