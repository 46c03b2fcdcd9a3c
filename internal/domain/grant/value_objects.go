package grant

import (
	"strings"

	"roomfinder/internal/domain/geo"
	"roomfinder/internal/domain/listing"
	"roomfinder/internal/pkg/errs"
)

// Area is the key grants and listing pools are scoped by. It matches a listing's city.
type Area struct {
	value string
}

func NewArea(s string) (Area, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxAreaLength {
		return Area{}, ErrInvalidArea
	}
	return Area{value: s}, nil
}

func (a Area) String() string { return a.value }

// Key is the case-insensitive form used for comparisons.
func (a Area) Key() string { return strings.ToLower(a.value) }

func (a Area) Equal(other Area) bool { return a.Key() == other.Key() }

// PurchaseRequest is a validated purchase. It can only be built through NewPurchaseRequest.
type PurchaseRequest struct {
	area     Area
	quantity int
	origin   geo.Point
	filter   listing.Filter
}

// NewPurchaseRequest rejects a missing origin rather than defaulting it.
// Every failure is also marked with ErrInvalidRequest.
func NewPurchaseRequest(area string, quantity int, lat, lng *float64, filter listing.Filter) (PurchaseRequest, error) {
	a, err := NewArea(area)
	if err != nil {
		return PurchaseRequest{}, invalid(err)
	}
	if quantity < 1 {
		return PurchaseRequest{}, invalid(ErrInvalidQuantity)
	}
	if lat == nil || lng == nil {
		return PurchaseRequest{}, invalid(ErrMissingOrigin)
	}
	origin, err := geo.NewPoint(*lat, *lng)
	if err != nil {
		return PurchaseRequest{}, invalid(err)
	}
	return PurchaseRequest{area: a, quantity: quantity, origin: origin, filter: filter}, nil
}

func (r PurchaseRequest) Area() Area             { return r.area }
func (r PurchaseRequest) Quantity() int          { return r.quantity }
func (r PurchaseRequest) Origin() geo.Point      { return r.origin }
func (r PurchaseRequest) Filter() listing.Filter { return r.filter }

func invalid(err error) error {
	return errs.Mark(err, ErrInvalidRequest)
}
