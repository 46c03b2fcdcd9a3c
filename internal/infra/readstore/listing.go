package readstore

import (
	"context"

	"github.com/google/uuid"

	"roomfinder/internal/domain/geo"
	"roomfinder/internal/domain/listing"
	"roomfinder/internal/infra"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/pkg/pgconv"
	"roomfinder/internal/usecase/queries"
)

type ListingReadQueries interface {
	FindListingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindListingViewByIDRow, error)
	ListListingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingViewsParams) ([]sqlc.ListListingViewsRow, error)
	ListCandidateListings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCandidateListingsParams) ([]sqlc.ListCandidateListingsRow, error)
	CountCandidateListings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCandidateListingsParams) (int64, error)
	ListDistinctAreas(ctx context.Context, db sqlc.DBTX) ([]string, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.FindListingViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}
	return toListingView(row), nil
}

func (r *ListingReadStore) List(ctx context.Context, search queries.ListingSearch) ([]*queries.ListingView, error) {
	f := search.Filter
	rows, err := r.queries.ListListingViews(ctx, r.db, sqlc.ListListingViewsParams{
		City:       pgconv.StringPtrToPgtype(search.City),
		RoomType:   pgconv.StringPtrToPgtype(f.RoomType),
		MinRent:    pgconv.IntPtrToPgtype(f.MinRent),
		MaxRent:    pgconv.IntPtrToPgtype(f.MaxRent),
		GenderPref: pgconv.StringPtrToPgtype(f.GenderPref),
		RowLimit:   int32(search.Limit), // #nosec G115 -- limit is bounded by the query layer
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}

	views := make([]*queries.ListingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toListingView(sqlc.FindListingViewByIDRow(row)))
	}
	return views, nil
}

// Candidates returns the purchase pool for an area, newest first. Ranking happens in the domain.
func (r *ListingReadStore) Candidates(ctx context.Context, area string, filter listing.Filter) ([]listing.Candidate, error) {
	rows, err := r.queries.ListCandidateListings(ctx, r.db, sqlc.ListCandidateListingsParams(candidateParams(area, filter)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidate listings", err)
	}

	candidates := make([]listing.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, listing.Candidate{
			ID:        row.ID,
			Title:     row.Title,
			Rent:      int(row.Rent),
			Position:  geo.PointFromNullable(pgconv.Float64PtrFromPgtype(row.Latitude), pgconv.Float64PtrFromPgtype(row.Longitude)),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return candidates, nil
}

func (r *ListingReadStore) CountCandidates(ctx context.Context, area string, filter listing.Filter) (int64, error) {
	count, err := r.queries.CountCandidateListings(ctx, r.db, candidateParams(area, filter))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count candidate listings", err)
	}
	return count, nil
}

func (r *ListingReadStore) ListAreas(ctx context.Context) ([]string, error) {
	areas, err := r.queries.ListDistinctAreas(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list areas", err)
	}
	return areas, nil
}

func candidateParams(area string, f listing.Filter) sqlc.CountCandidateListingsParams {
	return sqlc.CountCandidateListingsParams{
		Area:       area,
		RoomType:   pgconv.StringPtrToPgtype(f.RoomType),
		MinRent:    pgconv.IntPtrToPgtype(f.MinRent),
		MaxRent:    pgconv.IntPtrToPgtype(f.MaxRent),
		GenderPref: pgconv.StringPtrToPgtype(f.GenderPref),
	}
}

func toListingView(row sqlc.FindListingViewByIDRow) *queries.ListingView {
	return &queries.ListingView{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Title:         row.Title,
		Description:   row.Description,
		Rent:          int(row.Rent),
		City:          row.City,
		Locality:      row.Locality,
		Latitude:      pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:     pgconv.Float64PtrFromPgtype(row.Longitude),
		RoomType:      row.RoomType,
		GenderPref:    row.GenderPref,
		AvailableFrom: pgconv.DatePtrFromPgtype(row.AvailableFrom),
		Available:     row.Available,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		Owner: queries.OwnerView{
			Name:  row.OwnerName,
			Email: row.OwnerEmail,
			Phone: pgconv.StringPtrFromPgtype(row.OwnerPhone),
		},
	}
}

func pinnedRowToListingRow(row sqlc.ListPinnedListingViewsRow) sqlc.FindListingViewByIDRow {
	return sqlc.FindListingViewByIDRow{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Title:         row.Title,
		Description:   row.Description,
		Rent:          row.Rent,
		City:          row.City,
		Locality:      row.Locality,
		Latitude:      row.Latitude,
		Longitude:     row.Longitude,
		RoomType:      row.RoomType,
		GenderPref:    row.GenderPref,
		AvailableFrom: row.AvailableFrom,
		Available:     row.Available,
		CreatedAt:     row.CreatedAt,
		OwnerName:     row.OwnerName,
		OwnerEmail:    row.OwnerEmail,
		OwnerPhone:    row.OwnerPhone,
	}
}
