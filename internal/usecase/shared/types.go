package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations
type GrantSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Area      string
	Quantity  int
	Consumed  int
	Active    bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}

// ViewOutcome is the result of charging a detail view against a grant.
type ViewOutcome struct {
	GrantID   uuid.UUID
	ListingID uuid.UUID
	// Counted is false when the listing was already charged or the quota was full.
	Counted bool
}
