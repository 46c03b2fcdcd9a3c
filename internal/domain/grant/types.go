package grant

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid purchase request")
	ErrInvalidArea     = errors.New("area is required and must be at most 100 characters")
	ErrInvalidQuantity = errors.New("houses to view must be at least 1")
	ErrMissingOrigin   = errors.New("latitude and longitude are required")
	ErrEmptyPinnedSet  = errors.New("a grant must pin at least one listing")
	ErrPinnedOverflow  = errors.New("pinned set exceeds purchased quantity")
	ErrNotEntitled     = errors.New("listing is not in the grant's pinned set")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusExhausted Status = "exhausted"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// PaymentStatusCompleted is the only payment status; the gateway is simulated.
const PaymentStatusCompleted = "completed"

const maxAreaLength = 100
