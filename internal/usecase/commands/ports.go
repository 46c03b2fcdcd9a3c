package commands

import (
	"roomfinder/internal/domain/grant"

	"github.com/google/uuid"
)

// PinnedSummary describes one listing pinned by a purchase, for the confirmation response.
type PinnedSummary struct {
	ListingID  uuid.UUID
	Title      string
	Rent       int
	Rank       int
	DistanceKm *float64
}

type PurchaseResult struct {
	Grant  *grant.Grant
	Pinned []PinnedSummary
}

type RegisterResult struct {
	UserID uuid.UUID
}

type CreateListingResult struct {
	ListingID uuid.UUID
}
