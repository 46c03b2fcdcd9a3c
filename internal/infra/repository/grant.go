package repository

import (
	"context"
	"time"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/infra"
	"roomfinder/internal/infra/repository/converter"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/pkg/errs"
	"roomfinder/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GrantWriteQueries interface {
	CreateGrant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGrantParams) error
	CreateGrantAccessEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGrantAccessEntryParams) error
	IsListingPinned(ctx context.Context, db sqlc.DBTX, arg sqlc.IsListingPinnedParams) (bool, error)
	InsertGrantView(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertGrantViewParams) (int64, error)
	IncrementGrantConsumed(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeactivateExpiredGrants(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type GrantRepository struct {
	queries GrantWriteQueries
}

func NewGrantRepository(queries GrantWriteQueries) *GrantRepository {
	return &GrantRepository{
		queries: queries,
	}
}

// Create writes the grant and its access set. It must run inside a transaction:
// an error on any entry leaves earlier rows for the caller's rollback to discard.
func (r *GrantRepository) Create(ctx context.Context, tx sqlc.DBTX, g *grant.Grant) error {
	if err := r.queries.CreateGrant(ctx, tx, converter.GrantToCreateParams(g)); err != nil {
		return infra.WrapRepoErr("failed to create grant", err)
	}

	entries, err := converter.GrantToEntryParams(g)
	if err != nil {
		return infra.WrapRepoErr("failed to convert access set", err, infra.KindDBFailure)
	}

	for _, entry := range entries {
		if err := r.queries.CreateGrantAccessEntry(ctx, tx, entry); err != nil {
			return infra.WrapRepoErr("failed to create access set entry", errs.Wrapf(err, "listing %s", entry.ListingID))
		}
	}
	return nil
}

func (r *GrantRepository) IsPinned(ctx context.Context, tx sqlc.DBTX, grantID, listingID uuid.UUID) (bool, error) {
	pinned, err := r.queries.IsListingPinned(ctx, tx, sqlc.IsListingPinnedParams{
		GrantID:   grantID,
		ListingID: listingID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pinned listing", err)
	}
	return pinned, nil
}

func (r *GrantRepository) RecordView(ctx context.Context, tx sqlc.DBTX, grantID, listingID uuid.UUID, now time.Time) (bool, error) {
	inserted, err := r.queries.InsertGrantView(ctx, tx, sqlc.InsertGrantViewParams{
		GrantID:   grantID,
		ListingID: listingID,
		ViewedAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record grant view", err)
	}
	return inserted == 1, nil
}

func (r *GrantRepository) IncrementConsumed(ctx context.Context, tx sqlc.DBTX, grantID uuid.UUID) (bool, error) {
	updated, err := r.queries.IncrementGrantConsumed(ctx, tx, grantID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment consumed", err)
	}
	return updated == 1, nil
}

func (r *GrantRepository) DeactivateExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeactivateExpiredGrants(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate expired grants", err)
	}
	return count, nil
}
