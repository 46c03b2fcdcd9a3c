//go:build unit || e2e

package builder

import (
	"time"

	"roomfinder/internal/domain/geo"
	"roomfinder/internal/domain/listing"
	reqdto "roomfinder/internal/handler/dto/request"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ListingBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Rent        int
	City        string
	Locality    string
	Latitude    *float64
	Longitude   *float64
	RoomType    string
	GenderPref  string
	OwnerName   string
	OwnerEmail  string
	OwnerPhone  string
	CreatedAt   time.Time
}

func NewListingBuilder() *ListingBuilder {
	lat, lng := 19.0760, 72.8777
	return &ListingBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Sunny 1BHK near the station",
		Description: "Second floor, balcony, call after 6pm",
		Rent:        15000,
		City:        "Mumbai",
		Locality:    "Andheri West",
		Latitude:    &lat,
		Longitude:   &lng,
		RoomType:    "1BHK",
		GenderPref:  listing.GenderPrefAny,
		OwnerName:   "Test Seller",
		OwnerEmail:  "seller@example.com",
		OwnerPhone:  "+91 90000 00001",
		CreatedAt:   time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	b.ID = id
	return b
}

func (b *ListingBuilder) WithCity(city string) *ListingBuilder {
	b.City = city
	return b
}

func (b *ListingBuilder) WithRent(rent int) *ListingBuilder {
	b.Rent = rent
	return b
}

func (b *ListingBuilder) At(lat, lng float64) *ListingBuilder {
	b.Latitude = &lat
	b.Longitude = &lng
	return b
}

func (b *ListingBuilder) WithoutCoordinates() *ListingBuilder {
	b.Latitude = nil
	b.Longitude = nil
	return b
}

func (b *ListingBuilder) position() *geo.Point {
	return geo.PointFromNullable(b.Latitude, b.Longitude)
}

// Build methods
func (b *ListingBuilder) BuildCandidate() listing.Candidate {
	return listing.Candidate{
		ID:        b.ID,
		Title:     b.Title,
		Rent:      b.Rent,
		Position:  b.position(),
		CreatedAt: b.CreatedAt,
	}
}

func (b *ListingBuilder) BuildParams() listing.NewListingParams {
	return listing.NewListingParams{
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		Description: b.Description,
		Rent:        b.Rent,
		City:        b.City,
		Locality:    b.Locality,
		Position:    b.position(),
		RoomType:    b.RoomType,
		GenderPref:  b.GenderPref,
	}
}

func (b *ListingBuilder) BuildDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Title:       b.Title,
		Description: b.Description,
		Rent:        b.Rent,
		City:        b.City,
		Locality:    b.Locality,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		RoomType:    b.RoomType,
		GenderPref:  b.GenderPref,
	}
}

func (b *ListingBuilder) BuildReadModel() *queries.ListingView {
	phone := b.OwnerPhone
	return &queries.ListingView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		Description: b.Description,
		Rent:        b.Rent,
		City:        b.City,
		Locality:    b.Locality,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		RoomType:    b.RoomType,
		GenderPref:  b.GenderPref,
		Available:   true,
		CreatedAt:   b.CreatedAt,
		Owner: queries.OwnerView{
			Name:  b.OwnerName,
			Email: b.OwnerEmail,
			Phone: &phone,
		},
	}
}

func (b *ListingBuilder) BuildPinned(rank int, distanceKm *float64) *queries.PinnedListingView {
	return &queries.PinnedListingView{
		Rank:       rank,
		DistanceKm: distanceKm,
		Listing:    *b.BuildReadModel(),
	}
}

func (b *ListingBuilder) BuildInfraRow() sqlc.FindListingViewByIDRow {
	return sqlc.FindListingViewByIDRow{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		Description: b.Description,
		Rent:        int32(b.Rent),
		City:        b.City,
		Locality:    b.Locality,
		Latitude:    float8(b.Latitude),
		Longitude:   float8(b.Longitude),
		RoomType:    b.RoomType,
		GenderPref:  b.GenderPref,
		Available:   true,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		OwnerName:   b.OwnerName,
		OwnerEmail:  b.OwnerEmail,
		OwnerPhone:  pgtype.Text{String: b.OwnerPhone, Valid: b.OwnerPhone != ""},
	}
}

func (b *ListingBuilder) BuildCandidateRow() sqlc.ListCandidateListingsRow {
	return sqlc.ListCandidateListingsRow{
		ID:        b.ID,
		Title:     b.Title,
		Rent:      int32(b.Rent),
		Latitude:  float8(b.Latitude),
		Longitude: float8(b.Longitude),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func float8(v *float64) pgtype.Float8 {
	if v == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *v, Valid: true}
}
