package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"roomfinder/internal/infra"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/pkg/pgconv"
	"roomfinder/internal/usecase/queries"
)

type GrantReadQueries interface {
	FindLiveGrantForArea(ctx context.Context, db sqlc.DBTX, arg sqlc.FindLiveGrantForAreaParams) (sqlc.Grants, error)
	FindUnexpiredGrantForArea(ctx context.Context, db sqlc.DBTX, arg sqlc.FindUnexpiredGrantForAreaParams) (sqlc.Grants, error)
	FindGrantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Grants, error)
	ListGrantsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListGrantsByUserRow, error)
	ListPinnedListingViews(ctx context.Context, db sqlc.DBTX, grantID uuid.UUID) ([]sqlc.ListPinnedListingViewsRow, error)
}

type GrantReadStore struct {
	queries GrantReadQueries
	db      sqlc.DBTX
}

func NewGrantReadStore(queries GrantReadQueries, db sqlc.DBTX) *GrantReadStore {
	return &GrantReadStore{
		queries: queries,
		db:      db,
	}
}

// FindLiveByArea returns the newest grant that is flagged active, unexpired at now and not exhausted.
func (r *GrantReadStore) FindLiveByArea(ctx context.Context, userID uuid.UUID, area string, now time.Time) (*queries.GrantView, error) {
	row, err := r.queries.FindLiveGrantForArea(ctx, r.db, sqlc.FindLiveGrantForAreaParams{
		UserID: userID,
		Area:   area,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find live grant", err)
	}
	return toGrantView(row, 0), nil
}

// FindUnexpiredByArea is FindLiveByArea without the quota condition, so exhausted grants are returned too.
func (r *GrantReadStore) FindUnexpiredByArea(ctx context.Context, userID uuid.UUID, area string, now time.Time) (*queries.GrantView, error) {
	row, err := r.queries.FindUnexpiredGrantForArea(ctx, r.db, sqlc.FindUnexpiredGrantForAreaParams{
		UserID: userID,
		Area:   area,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find unexpired grant", err)
	}
	return toGrantView(row, 0), nil
}

func (r *GrantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GrantView, error) {
	row, err := r.queries.FindGrantByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find grant by ID", err)
	}
	return toGrantView(row, 0), nil
}

func (r *GrantReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.GrantView, error) {
	rows, err := r.queries.ListGrantsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list grants by user", err)
	}

	views := make([]*queries.GrantView, 0, len(rows))
	for _, row := range rows {
		g := sqlc.Grants{
			ID:            row.ID,
			UserID:        row.UserID,
			Area:          row.Area,
			Quantity:      row.Quantity,
			PricePaid:     row.PricePaid,
			OriginLat:     row.OriginLat,
			OriginLng:     row.OriginLng,
			PaymentStatus: row.PaymentStatus,
			Active:        row.Active,
			Consumed:      row.Consumed,
			CreatedAt:     row.CreatedAt,
			ExpiresAt:     row.ExpiresAt,
		}
		views = append(views, toGrantView(g, int(row.PinnedCount)))
	}
	return views, nil
}

// ListPinned returns the grant's access set joined with full listing and owner fields, by rank.
func (r *GrantReadStore) ListPinned(ctx context.Context, grantID uuid.UUID) ([]*queries.PinnedListingView, error) {
	rows, err := r.queries.ListPinnedListingViews(ctx, r.db, grantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pinned listings", err)
	}

	views := make([]*queries.PinnedListingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.PinnedListingView{
			Rank:       int(row.Rank),
			DistanceKm: pgconv.Float64PtrFromPgtype(row.DistanceKm),
			Listing:    *toListingView(pinnedRowToListingRow(row)),
		})
	}
	return views, nil
}

func toGrantView(row sqlc.Grants, pinnedCount int) *queries.GrantView {
	return &queries.GrantView{
		ID:            row.ID,
		UserID:        row.UserID,
		Area:          row.Area,
		Quantity:      int(row.Quantity),
		PricePaid:     int(row.PricePaid),
		OriginLat:     row.OriginLat,
		OriginLng:     row.OriginLng,
		PaymentStatus: row.PaymentStatus,
		Active:        row.Active,
		Consumed:      int(row.Consumed),
		PinnedCount:   pinnedCount,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}
}
