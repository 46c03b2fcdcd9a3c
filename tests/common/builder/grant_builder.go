//go:build unit || e2e

package builder

import (
	"time"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/domain/listing"
	"roomfinder/internal/domain/pricing"
	reqdto "roomfinder/internal/handler/dto/request"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/usecase/queries"
	"roomfinder/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GrantBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Area        string
	Quantity    int
	PricePaid   int
	OriginLat   float64
	OriginLng   float64
	Active      bool
	Consumed    int
	PinnedCount int
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

func NewGrantBuilder() *GrantBuilder {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &GrantBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Area:        "Mumbai",
		Quantity:    5,
		PricePaid:   40,
		OriginLat:   19.0760,
		OriginLng:   72.8777,
		Active:      true,
		Consumed:    0,
		PinnedCount: 5,
		CreatedAt:   created,
		ExpiresAt:   created.Add(3 * 24 * time.Hour),
	}
}

func (b *GrantBuilder) With(mutate func(*GrantBuilder)) *GrantBuilder {
	mutate(b)
	return b
}

func (b *GrantBuilder) ForUser(id uuid.UUID) *GrantBuilder {
	b.UserID = id
	return b
}

func (b *GrantBuilder) WithConsumed(n int) *GrantBuilder {
	b.Consumed = n
	return b
}

func (b *GrantBuilder) ExpiringAt(t time.Time) *GrantBuilder {
	b.ExpiresAt = t
	return b
}

// Build methods
func (b *GrantBuilder) BuildReadModel() *queries.GrantView {
	return &queries.GrantView{
		ID:            b.ID,
		UserID:        b.UserID,
		Area:          b.Area,
		Quantity:      b.Quantity,
		PricePaid:     b.PricePaid,
		OriginLat:     b.OriginLat,
		OriginLng:     b.OriginLng,
		PaymentStatus: grant.PaymentStatusCompleted,
		Active:        b.Active,
		Consumed:      b.Consumed,
		PinnedCount:   b.PinnedCount,
		CreatedAt:     b.CreatedAt,
		ExpiresAt:     b.ExpiresAt,
	}
}

func (b *GrantBuilder) BuildSnapshot() *shared.GrantSnapshot {
	return &shared.GrantSnapshot{
		ID:        b.ID,
		UserID:    b.UserID,
		Area:      b.Area,
		Quantity:  b.Quantity,
		Consumed:  b.Consumed,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		ExpiresAt: b.ExpiresAt,
	}
}

func (b *GrantBuilder) BuildInfra() sqlc.Grants {
	return sqlc.Grants{
		ID:            b.ID,
		UserID:        b.UserID,
		Area:          b.Area,
		Quantity:      int32(b.Quantity),
		PricePaid:     int32(b.PricePaid),
		OriginLat:     b.OriginLat,
		OriginLng:     b.OriginLng,
		PaymentStatus: grant.PaymentStatusCompleted,
		Active:        b.Active,
		Consumed:      int32(b.Consumed),
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		ExpiresAt:     pgtype.Timestamptz{Time: b.ExpiresAt, Valid: true},
	}
}

// PurchaseBuilder describes a process-payment request.
type PurchaseBuilder struct {
	Area         string
	HousesToView int
	Latitude     *float64
	Longitude    *float64
	PropertyType *string
	MinPrice     *int
	MaxPrice     *int
}

func NewPurchaseBuilder() *PurchaseBuilder {
	lat, lng := 19.0760, 72.8777
	return &PurchaseBuilder{
		Area:         "Mumbai",
		HousesToView: 5,
		Latitude:     &lat,
		Longitude:    &lng,
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) BuildDTO() reqdto.PurchaseRequest {
	return reqdto.PurchaseRequest{
		Area:         b.Area,
		HousesToView: b.HousesToView,
		Latitude:     b.Latitude,
		Longitude:    b.Longitude,
		PropertyType: b.PropertyType,
		MinPrice:     b.MinPrice,
		MaxPrice:     b.MaxPrice,
	}
}

func (b *PurchaseBuilder) BuildDomain() (grant.PurchaseRequest, error) {
	filter, err := listing.NewFilter(b.PropertyType, b.MinPrice, b.MaxPrice, nil)
	if err != nil {
		return grant.PurchaseRequest{}, err
	}
	return grant.NewPurchaseRequest(b.Area, b.HousesToView, b.Latitude, b.Longitude, filter)
}

// BuildGrant runs the real selection over pool, as a purchase would.
func (b *PurchaseBuilder) BuildGrant(userID uuid.UUID, policy *pricing.Policy, pool []listing.Candidate, now time.Time) (*grant.Grant, error) {
	req, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	quote, err := policy.Quote(req.Quantity())
	if err != nil {
		return nil, err
	}
	ranked := grant.SelectNearest(req.Origin(), pool, req.Quantity())
	return grant.New(userID, req, quote, grant.PinnedFromRanked(ranked), now)
}
