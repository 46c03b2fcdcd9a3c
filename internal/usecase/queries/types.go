package queries

import (
	"time"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/domain/listing"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Phone     *string    `json:"phone,omitempty"`
	Points    int        `json:"points"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type OwnerView struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// ListingView is the full, unredacted listing row joined with its owner.
type ListingView struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Rent          int        `json:"rent"`
	City          string     `json:"city"`
	Locality      string     `json:"locality"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	RoomType      string     `json:"room_type"`
	GenderPref    string     `json:"gender_pref"`
	AvailableFrom *time.Time `json:"available_from,omitempty"`
	Available     bool       `json:"available"`
	CreatedAt     time.Time  `json:"created_at"`
	Owner         OwnerView  `json:"owner"`
}

type ListingSearch struct {
	City   *string
	Filter listing.Filter
	Limit  int
}

// GrantView is a stored grant. Status is always derived from a clock reading.
type GrantView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Area          string    `json:"area"`
	Quantity      int       `json:"quantity"`
	PricePaid     int       `json:"price_paid"`
	OriginLat     float64   `json:"origin_lat"`
	OriginLng     float64   `json:"origin_lng"`
	PaymentStatus string    `json:"payment_status"`
	Active        bool      `json:"active"`
	Consumed      int       `json:"consumed"`
	PinnedCount   int       `json:"pinned_count"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (g *GrantView) Status(now time.Time) grant.Status {
	return grant.DeriveStatus(now, g.ExpiresAt, g.Consumed, g.Quantity)
}

func (g *GrantView) Remaining() int {
	return max(g.Quantity-g.Consumed, 0)
}

type PinnedListingView struct {
	Rank       int         `json:"rank"`
	DistanceKm *float64    `json:"distance_km,omitempty"`
	Listing    ListingView `json:"listing"`
}

// AccessState answers CheckAccess. Grant is nil when HasAccess is false.
type AccessState struct {
	HasAccess     bool       `json:"has_access"`
	Area          string     `json:"area"`
	Grant         *GrantView `json:"grant,omitempty"`
	Remaining     int        `json:"remaining"`
	DaysRemaining int        `json:"days_remaining"`
}

const (
	defaultListingLimit = 50
	maxListingLimit     = 200
)

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListingLimit
	}
	return min(limit, maxListingLimit)
}
