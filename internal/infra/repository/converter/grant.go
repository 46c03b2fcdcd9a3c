package converter

import (
	"roomfinder/internal/domain/grant"
	sqlc "roomfinder/internal/infra/sqlc/generated"
	"roomfinder/internal/pkg/pgconv"
)

func GrantToCreateParams(g *grant.Grant) sqlc.CreateGrantParams {
	origin := g.Origin()
	return sqlc.CreateGrantParams{
		ID:            g.ID(),
		UserID:        g.UserID(),
		Area:          g.Area().String(),
		Quantity:      int32(g.Quantity()),  // #nosec G115 -- bounded by the pricing policy
		PricePaid:     int32(g.PricePaid()), // #nosec G115 -- bounded by the pricing policy
		OriginLat:     origin.Lat,
		OriginLng:     origin.Lng,
		PaymentStatus: grant.PaymentStatusCompleted,
		CreatedAt:     pgconv.TimeToPgtype(g.CreatedAt()),
		ExpiresAt:     pgconv.TimeToPgtype(g.ExpiresAt()),
	}
}

// GrantToEntryParams returns one access-set row per pinned listing, in rank order.
func GrantToEntryParams(g *grant.Grant) ([]sqlc.CreateGrantAccessEntryParams, error) {
	params := make([]sqlc.CreateGrantAccessEntryParams, 0, g.PinnedCount())
	for _, p := range g.Pinned() {
		distance, err := pgconv.Float64PtrToPgtype(p.Distance.KmPtr())
		if err != nil {
			return nil, err
		}
		params = append(params, sqlc.CreateGrantAccessEntryParams{
			GrantID:    g.ID(),
			ListingID:  p.ListingID,
			UserID:     g.UserID(),
			Rank:       int32(p.Rank), // #nosec G115 -- rank is at most the grant quantity
			DistanceKm: distance,
			AddedAt:    pgconv.TimeToPgtype(g.CreatedAt()),
		})
	}
	return params, nil
}
