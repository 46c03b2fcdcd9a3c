package response

import (
	"time"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/domain/pricing"
	"roomfinder/internal/usecase/commands"
	"roomfinder/internal/usecase/queries"

	"github.com/google/uuid"
)

type TierResponse struct {
	Quantity     int `json:"houses"`
	Price        int `json:"price"`
	DurationDays int `json:"durationDays"`
}

type PricingResponse struct {
	Tiers           []TierResponse `json:"tiers"`
	PerUnitRate     int            `json:"perUnitRate"`
	MinDurationDays int            `json:"minDurationDays"`
	MaxHouses       int            `json:"maxHouses"`
}

func FromPricingCatalog(c queries.PricingCatalog) *PricingResponse {
	tiers := make([]TierResponse, len(c.Tiers))
	for i, t := range c.Tiers {
		tiers[i] = TierResponse{Quantity: t.Quantity, Price: t.Price, DurationDays: t.DurationDays}
	}
	return &PricingResponse{
		Tiers:           tiers,
		PerUnitRate:     c.PerUnitRate,
		MinDurationDays: c.MinDurationDays,
		MaxHouses:       c.MaxQuantity,
	}
}

type QuoteResponse struct {
	Houses       int `json:"houses"`
	Price        int `json:"price"`
	DurationDays int `json:"durationDays"`
}

func FromQuote(q pricing.Quote) *QuoteResponse {
	return &QuoteResponse{Houses: q.Quantity, Price: q.Price, DurationDays: q.DurationDays}
}

type AreasResponse struct {
	Areas []string `json:"areas"`
}

type AvailableHousesResponse struct {
	Area      string `json:"area"`
	Available int64  `json:"available"`
}

type GrantResponse struct {
	ID            uuid.UUID `json:"id"`
	Area          string    `json:"area"`
	HousesToView  int       `json:"housesToView"`
	PinnedCount   int       `json:"pinnedCount"`
	AmountPaid    int       `json:"amountPaid"`
	PaymentStatus string    `json:"paymentStatus"`
	Viewed        int       `json:"viewed"`
	Remaining     int       `json:"remaining"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

func fromGrantView(g *queries.GrantView, status string) *GrantResponse {
	return &GrantResponse{
		ID:            g.ID,
		Area:          g.Area,
		HousesToView:  g.Quantity,
		PinnedCount:   g.PinnedCount,
		AmountPaid:    g.PricePaid,
		PaymentStatus: g.PaymentStatus,
		Viewed:        g.Consumed,
		Remaining:     g.Remaining(),
		Status:        status,
		CreatedAt:     g.CreatedAt,
		ExpiresAt:     g.ExpiresAt,
	}
}

type AccessResponse struct {
	HasAccess     bool           `json:"hasAccess"`
	Area          string         `json:"area"`
	Remaining     int            `json:"remaining"`
	DaysRemaining int            `json:"daysRemaining"`
	Grant         *GrantResponse `json:"grant,omitempty"`
}

func FromAccessState(s *queries.AccessState) *AccessResponse {
	resp := &AccessResponse{
		HasAccess:     s.HasAccess,
		Area:          s.Area,
		Remaining:     s.Remaining,
		DaysRemaining: s.DaysRemaining,
	}
	if s.Grant != nil {
		// only live grants are attached to an access state
		resp.Grant = fromGrantView(s.Grant, grant.StatusActive.String())
	}
	return resp
}

type PinnedSummaryResponse struct {
	ListingID  uuid.UUID `json:"listingId"`
	Title      string    `json:"title"`
	Rent       int       `json:"rent"`
	Rank       int       `json:"rank"`
	DistanceKm *float64  `json:"distanceKm,omitempty"`
}

type PurchaseResponse struct {
	ID           uuid.UUID               `json:"id"`
	Area         string                  `json:"area"`
	HousesToView int                     `json:"housesToView"`
	PinnedCount  int                     `json:"pinnedCount"`
	AmountPaid   int                     `json:"amountPaid"`
	Status       string                  `json:"status"`
	CreatedAt    time.Time               `json:"createdAt"`
	ExpiresAt    time.Time               `json:"expiresAt"`
	DurationDays int                     `json:"durationDays"`
	Pinned       []PinnedSummaryResponse `json:"pinned"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	g := r.Grant
	pinned := make([]PinnedSummaryResponse, len(r.Pinned))
	for i, p := range r.Pinned {
		pinned[i] = PinnedSummaryResponse{
			ListingID:  p.ListingID,
			Title:      p.Title,
			Rent:       p.Rent,
			Rank:       p.Rank,
			DistanceKm: p.DistanceKm,
		}
	}
	return &PurchaseResponse{
		ID:           g.ID(),
		Area:         g.Area().String(),
		HousesToView: g.Quantity(),
		PinnedCount:  g.PinnedCount(),
		AmountPaid:   g.PricePaid(),
		Status:       g.Status(g.CreatedAt()).String(),
		CreatedAt:    g.CreatedAt(),
		ExpiresAt:    g.ExpiresAt(),
		DurationDays: g.DurationDays(),
		Pinned:       pinned,
	}
}

type HistoryResponse struct {
	Grants []*GrantResponse `json:"grants"`
}

func FromHistory(items []queries.HistoryItem) *HistoryResponse {
	grants := make([]*GrantResponse, len(items))
	for i, item := range items {
		grants[i] = fromGrantView(item.Grant, item.Status.String())
	}
	return &HistoryResponse{Grants: grants}
}

type AccessibleHousesResponse struct {
	HasActivePlan bool               `json:"hasActivePlan"`
	Access        *AccessResponse    `json:"access"`
	Listings      []*ListingResponse `json:"listings"`
}

func FromAccessibleListings(a *queries.AccessibleListings) (*AccessibleHousesResponse, error) {
	listings := make([]*ListingResponse, 0, len(a.Listings))
	for _, p := range a.Listings {
		resp, err := FromPinnedListing(p)
		if err != nil {
			return nil, err
		}
		listings = append(listings, resp)
	}
	return &AccessibleHousesResponse{
		HasActivePlan: a.HasActivePlan,
		Access:        FromAccessState(a.Access),
		Listings:      listings,
	}, nil
}

type SweepResponse struct {
	Deactivated int64 `json:"deactivated"`
}
