package grant

import (
	"time"

	"roomfinder/internal/domain/geo"
	"roomfinder/internal/domain/pricing"

	"github.com/google/uuid"
)

// PinnedListing is one access-set entry: a listing that counts against the grant.
type PinnedListing struct {
	ListingID uuid.UUID
	Rank      int
	Distance  geo.Distance
}

// Grant is a purchased, time-boxed entitlement over a fixed set of listings.
type Grant struct {
	id        uuid.UUID
	userID    uuid.UUID
	area      Area
	quantity  int
	pricePaid int
	origin    geo.Point
	createdAt time.Time
	expiresAt time.Time
	active    bool
	consumed  int
	pinned    []PinnedListing
}

func New(userID uuid.UUID, req PurchaseRequest, quote pricing.Quote, pinned []PinnedListing, now time.Time) (*Grant, error) {
	if len(pinned) == 0 {
		return nil, ErrEmptyPinnedSet
	}
	if len(pinned) > req.Quantity() {
		return nil, ErrPinnedOverflow
	}
	if quote.Quantity != req.Quantity() {
		return nil, ErrInvalidQuantity
	}

	set := make([]PinnedListing, len(pinned))
	copy(set, pinned)

	return &Grant{
		id:        uuid.New(),
		userID:    userID,
		area:      req.Area(),
		quantity:  req.Quantity(),
		pricePaid: quote.Price,
		origin:    req.Origin(),
		createdAt: now,
		expiresAt: now.Add(time.Duration(quote.DurationDays) * 24 * time.Hour),
		active:    true,
		consumed:  0,
		pinned:    set,
	}, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	area Area,
	quantity, pricePaid int,
	origin geo.Point,
	createdAt, expiresAt time.Time,
	active bool,
	consumed int,
	pinned []PinnedListing,
) *Grant {
	return &Grant{
		id:        id,
		userID:    userID,
		area:      area,
		quantity:  quantity,
		pricePaid: pricePaid,
		origin:    origin,
		createdAt: createdAt,
		expiresAt: expiresAt,
		active:    active,
		consumed:  consumed,
		pinned:    pinned,
	}
}

func (g *Grant) ID() uuid.UUID                { return g.id }
func (g *Grant) UserID() uuid.UUID            { return g.userID }
func (g *Grant) Area() Area                   { return g.area }
func (g *Grant) Quantity() int                { return g.quantity }
func (g *Grant) PricePaid() int               { return g.pricePaid }
func (g *Grant) Origin() geo.Point            { return g.origin }
func (g *Grant) CreatedAt() time.Time         { return g.createdAt }
func (g *Grant) ExpiresAt() time.Time         { return g.expiresAt }
func (g *Grant) Active() bool                 { return g.active }
func (g *Grant) Consumed() int                { return g.consumed }
func (g *Grant) Pinned() []PinnedListing      { return g.pinned }
func (g *Grant) PinnedCount() int             { return len(g.pinned) }
func (g *Grant) DurationDays() int            { return int(g.expiresAt.Sub(g.createdAt) / (24 * time.Hour)) }
func (g *Grant) Remaining() int               { return max(g.quantity-g.consumed, 0) }
func (g *Grant) IsExpired(now time.Time) bool { return !now.Before(g.expiresAt) }

// Status is derived from the timestamp and counter. The stored active flag is not consulted.
func (g *Grant) Status(now time.Time) Status {
	return DeriveStatus(now, g.expiresAt, g.consumed, g.quantity)
}

func (g *Grant) IsLive(now time.Time) bool {
	return g.active && g.Status(now) == StatusActive
}

func (g *Grant) IsPinned(listingID uuid.UUID) bool {
	for _, p := range g.pinned {
		if p.ListingID == listingID {
			return true
		}
	}
	return false
}

// DeriveStatus applies the grant state machine: expired wins over exhausted.
func DeriveStatus(now, expiresAt time.Time, consumed, quantity int) Status {
	switch {
	case !now.Before(expiresAt):
		return StatusExpired
	case consumed >= quantity:
		return StatusExhausted
	default:
		return StatusActive
	}
}
