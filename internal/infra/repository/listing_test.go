//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"roomfinder/internal/domain/listing"
	"roomfinder/internal/infra"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockListingWriteQueries struct {
	mock.Mock
}

func (m *MockListingWriteQueries) CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func TestListingCreate(t *testing.T) {
	now := time.Date(2025, 2, 1, 8, 30, 0, 0, time.UTC)
	availableFrom := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	params := builder.NewListingBuilder().BuildParams()
	params.AvailableFrom = &availableFrom
	located, err := listing.NewListing(params, now)
	require.NoError(t, err)

	unlocated, err := listing.NewListing(builder.NewListingBuilder().WithoutCoordinates().BuildParams(), now)
	require.NoError(t, err)

	t.Run("maps coordinates and availability", func(t *testing.T) {
		mockQueries := new(MockListingWriteQueries)
		mockQueries.On("CreateListing", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateListingParams) bool {
			return arg.ID == located.ID() &&
				arg.Latitude.Valid && arg.Latitude.Float64 == 19.0760 &&
				arg.Longitude.Valid && arg.Longitude.Float64 == 72.8777 &&
				arg.AvailableFrom.Valid && arg.AvailableFrom.Time.Equal(availableFrom) &&
				arg.Rent == 15000 && arg.City == "Mumbai"
		})).Return(located.ID(), nil)

		id, err := NewListingRepository(mockQueries).Create(context.Background(), nil, located)
		require.NoError(t, err)
		assert.Equal(t, located.ID(), id)
		mockQueries.AssertExpectations(t)
	})

	t.Run("missing coordinates are stored as NULL", func(t *testing.T) {
		mockQueries := new(MockListingWriteQueries)
		mockQueries.On("CreateListing", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateListingParams) bool {
			return !arg.Latitude.Valid && !arg.Longitude.Valid && !arg.AvailableFrom.Valid
		})).Return(unlocated.ID(), nil)

		_, err := NewListingRepository(mockQueries).Create(context.Background(), nil, unlocated)
		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("unknown owner is a foreign key violation", func(t *testing.T) {
		mockQueries := new(MockListingWriteQueries)
		mockQueries.On("CreateListing", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, &pgconn.PgError{Code: "23503"})

		_, err := NewListingRepository(mockQueries).Create(context.Background(), nil, located)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}
