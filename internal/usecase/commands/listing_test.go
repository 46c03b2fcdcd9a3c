//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"roomfinder/internal/domain/listing"
	"roomfinder/internal/domain/user"
	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/pkg/errs"
	"roomfinder/internal/usecase/commands"
	"roomfinder/tests/common/builder"
	queriesmock "roomfinder/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateListing(t *testing.T) {
	ownerID := uuid.New()

	setup := func(t *testing.T) (*uowMocks, *queriesmock.MockAreaCache, commands.ListingCommands) {
		ctrl := gomock.NewController(t)
		m := newUowMocks(ctrl)
		cache := queriesmock.NewMockAreaCache(ctrl)
		return m, cache, commands.NewListingCommands(m.uow, cache, clock.NewMockClock(fixedNow))
	}

	t.Run("seller creates a listing and the area cache is dropped", func(t *testing.T) {
		m, cache, uc := setup(t)
		newID := uuid.New()
		m.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, l *listing.Listing) (uuid.UUID, error) {
				assert.Equal(t, ownerID, l.OwnerID())
				assert.Equal(t, fixedNow, l.CreatedAt())
				return newID, nil
			}).Times(1)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

		result, err := uc.Create(context.Background(), ownerID, user.RoleSeller, builder.NewListingBuilder().BuildParams())
		require.NoError(t, err)
		assert.Equal(t, newID, result.ListingID)
	})

	t.Run("cache failure does not fail the create", func(t *testing.T) {
		m, cache, uc := setup(t)
		m.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1)
		cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down")).Times(1)

		_, err := uc.Create(context.Background(), ownerID, user.RoleSeller, builder.NewListingBuilder().BuildParams())
		assert.NoError(t, err)
	})

	t.Run("takers cannot create listings", func(t *testing.T) {
		m, _, uc := setup(t)
		m.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Create(context.Background(), ownerID, user.RoleTaker, builder.NewListingBuilder().BuildParams())
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("invalid listing is a validation error", func(t *testing.T) {
		_, _, uc := setup(t)

		_, err := uc.Create(context.Background(), ownerID, user.RoleSeller, builder.NewListingBuilder().WithRent(0).BuildParams())
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, listing.ErrInvalidRent))
	})
}
