//go:build unit

package readstore

import (
	"context"
	"testing"

	"roomfinder/internal/domain/listing"
	"roomfinder/internal/infra"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/usecase/queries"
	"roomfinder/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockListingReadQueries struct {
	mock.Mock
}

func (m *MockListingReadQueries) FindListingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindListingViewByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindListingViewByIDRow), args.Error(1)
}

func (m *MockListingReadQueries) ListListingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingViewsParams) ([]sqlc.ListListingViewsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListListingViewsRow), args.Error(1)
}

func (m *MockListingReadQueries) ListCandidateListings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCandidateListingsParams) ([]sqlc.ListCandidateListingsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListCandidateListingsRow), args.Error(1)
}

func (m *MockListingReadQueries) CountCandidateListings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCandidateListingsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListingReadQueries) ListDistinctAreas(ctx context.Context, db sqlc.DBTX) ([]string, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]string), args.Error(1)
}

func TestListingFindByID(t *testing.T) {
	row := builder.NewListingBuilder().BuildInfraRow()

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "listing not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockListingReadQueries)
			ret := row
			if tt.mockError != nil {
				ret = sqlc.FindListingViewByIDRow{}
			}
			mockQueries.On("FindListingViewByID", mock.Anything, mock.Anything, row.ID).Return(ret, tt.mockError)

			view, err := NewListingReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, view.ID)
			assert.Equal(t, 15000, view.Rent)
			require.NotNil(t, view.Latitude)
			assert.InDelta(t, 19.0760, *view.Latitude, 1e-9)
			assert.Equal(t, row.OwnerName, view.Owner.Name)
			require.NotNil(t, view.Owner.Phone)
			assert.Nil(t, view.AvailableFrom)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestListingList(t *testing.T) {
	city := "Mumbai"
	roomType := "1BHK"
	minRent := 5000
	search := queries.ListingSearch{
		City:   &city,
		Filter: listing.Filter{RoomType: &roomType, MinRent: &minRent},
		Limit:  25,
	}
	row := builder.NewListingBuilder().BuildInfraRow()

	mockQueries := new(MockListingReadQueries)
	mockQueries.On("ListListingViews", mock.Anything, mock.Anything, sqlc.ListListingViewsParams{
		City:     pgtype.Text{String: "Mumbai", Valid: true},
		RoomType: pgtype.Text{String: "1BHK", Valid: true},
		MinRent:  pgtype.Int4{Int32: 5000, Valid: true},
		RowLimit: 25,
	}).Return([]sqlc.ListListingViewsRow{sqlc.ListListingViewsRow(row)}, nil)

	views, err := NewListingReadStore(mockQueries, nil).List(context.Background(), search)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, row.ID, views[0].ID)
	mockQueries.AssertExpectations(t)
}

func TestCandidates(t *testing.T) {
	located := builder.NewListingBuilder().BuildCandidateRow()
	unlocated := builder.NewListingBuilder().WithoutCoordinates().BuildCandidateRow()

	mockQueries := new(MockListingReadQueries)
	mockQueries.On("ListCandidateListings", mock.Anything, mock.Anything, sqlc.ListCandidateListingsParams{Area: "Mumbai"}).
		Return([]sqlc.ListCandidateListingsRow{located, unlocated}, nil)

	candidates, err := NewListingReadStore(mockQueries, nil).Candidates(context.Background(), "Mumbai", listing.Filter{})
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	require.NotNil(t, candidates[0].Position)
	assert.InDelta(t, 72.8777, candidates[0].Position.Lng, 1e-9)
	assert.Nil(t, candidates[1].Position)
	assert.Equal(t, 15000, candidates[1].Rent)
}

func TestCountCandidatesAndAreas(t *testing.T) {
	gender := "Female"
	mockQueries := new(MockListingReadQueries)
	mockQueries.On("CountCandidateListings", mock.Anything, mock.Anything, sqlc.CountCandidateListingsParams{
		Area:       "Pune",
		GenderPref: pgtype.Text{String: "Female", Valid: true},
	}).Return(int64(12), nil)
	mockQueries.On("ListDistinctAreas", mock.Anything, mock.Anything).Return([]string{"Mumbai", "Pune"}, nil)

	store := NewListingReadStore(mockQueries, nil)

	n, err := store.CountCandidates(context.Background(), "Pune", listing.Filter{GenderPref: &gender})
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	areas, err := store.ListAreas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Mumbai", "Pune"}, areas)
}
