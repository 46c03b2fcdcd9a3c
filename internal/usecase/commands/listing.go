package commands

import (
	"context"
	"log/slog"

	"roomfinder/internal/domain/listing"
	"roomfinder/internal/domain/user"
	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/pkg/errs"
	"roomfinder/internal/usecase/queries"
	"roomfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrListingForbidden = errs.New("only sellers can create listings")

type ListingCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, role user.Role, params listing.NewListingParams) (*CreateListingResult, error)
}

type listingCommandsImpl struct {
	uow   shared.UnitOfWork
	areas queries.AreaCache
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, areas queries.AreaCache, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{uow: uow, areas: areas, clock: clk}
}

func (uc *listingCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, role user.Role, params listing.NewListingParams) (*CreateListingResult, error) {
	if !role.CanCreateListings() {
		return nil, errs.Mark(ErrListingForbidden, errs.ErrForbidden)
	}

	params.OwnerID = ownerID
	l, err := listing.NewListing(params, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Listings().Create(ctx, tx.DB(), l)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// a new city must show up in the area catalogue before the cache TTL runs out
	if err := uc.areas.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate area cache", "error", err.Error())
	}
	return &CreateListingResult{ListingID: id}, nil
}
