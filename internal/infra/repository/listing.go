package repository

import (
	"context"

	"roomfinder/internal/domain/listing"
	"roomfinder/internal/infra"
	"roomfinder/internal/infra/repository/converter"
	sqlc "roomfinder/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (uuid.UUID, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
}

func NewListingRepository(queries ListingWriteQueries) *ListingRepository {
	return &ListingRepository{
		queries: queries,
	}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (uuid.UUID, error) {
	id, err := r.queries.CreateListing(ctx, tx, converter.ListingToCreateParams(l))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return id, nil
}
