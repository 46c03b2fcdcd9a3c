package converter

import (
	"roomfinder/internal/domain/listing"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	params := sqlc.CreateListingParams{
		ID:            l.ID(),
		OwnerID:       l.OwnerID(),
		Title:         l.Title(),
		Description:   l.Description(),
		Rent:          int32(l.Rent()), // #nosec G115 -- validated by the listing entity
		City:          l.City(),
		Locality:      l.Locality(),
		RoomType:      l.RoomType(),
		GenderPref:    l.GenderPref(),
		AvailableFrom: pgconv.DatePtrToPgtype(l.AvailableFrom()),
		CreatedAt:     pgconv.TimeToPgtype(l.CreatedAt()),
	}
	if pos := l.Position(); pos != nil {
		params.Latitude = pgtype.Float8{Float64: pos.Lat, Valid: true}
		params.Longitude = pgtype.Float8{Float64: pos.Lng, Valid: true}
	}
	return params
}
