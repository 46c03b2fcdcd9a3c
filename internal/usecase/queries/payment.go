package queries

import (
	"context"
	"log/slog"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/domain/listing"
	"roomfinder/internal/domain/pricing"
	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

// AreaCache stores the area catalogue. A miss is (nil, false, nil).
type AreaCache interface {
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, areas []string) error
	Invalidate(ctx context.Context) error
}

type PricingCatalog struct {
	Tiers           []TierView
	PerUnitRate     int
	MinDurationDays int
	MaxQuantity     int
}

type TierView = pricing.Tier

type HistoryItem struct {
	Grant  *GrantView
	Status grant.Status
}

type PaymentQueries interface {
	Pricing() PricingCatalog
	Quote(quantity int) (pricing.Quote, error)
	Areas(ctx context.Context) ([]string, error)
	AvailableCount(ctx context.Context, area string, filter listing.Filter) (int64, error)
	History(ctx context.Context, userID uuid.UUID) ([]HistoryItem, error)
}

type paymentQueriesImpl struct {
	policy   *pricing.Policy
	listings ListingReadStore
	grants   GrantReadStore
	cache    AreaCache
	clock    clock.Clock
}

func NewPaymentQueries(policy *pricing.Policy, listings ListingReadStore, grants GrantReadStore, cache AreaCache, clk clock.Clock) PaymentQueries {
	return &paymentQueriesImpl{
		policy:   policy,
		listings: listings,
		grants:   grants,
		cache:    cache,
		clock:    clk,
	}
}

func (q *paymentQueriesImpl) Pricing() PricingCatalog {
	return PricingCatalog{
		Tiers:           q.policy.Tiers(),
		PerUnitRate:     q.policy.PerUnitRate(),
		MinDurationDays: q.policy.MinDurationDays(),
		MaxQuantity:     q.policy.MaxQuantity(),
	}
}

func (q *paymentQueriesImpl) Quote(quantity int) (pricing.Quote, error) {
	quote, err := q.policy.Quote(quantity)
	if err != nil {
		return pricing.Quote{}, errs.Mark(err, grant.ErrInvalidRequest)
	}
	return quote, nil
}

// Areas serves the catalogue from cache when possible. Cache failures degrade to the database.
func (q *paymentQueriesImpl) Areas(ctx context.Context) ([]string, error) {
	if areas, ok, err := q.cache.Get(ctx); err != nil {
		slog.Warn("area cache read failed", "error", err.Error())
	} else if ok {
		return areas, nil
	}

	areas, err := q.listings.ListAreas(ctx)
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, areas); err != nil {
		slog.Warn("area cache write failed", "error", err.Error())
	}
	return areas, nil
}

func (q *paymentQueriesImpl) AvailableCount(ctx context.Context, area string, filter listing.Filter) (int64, error) {
	a, err := grant.NewArea(area)
	if err != nil {
		return 0, errs.Mark(err, grant.ErrInvalidRequest)
	}
	return q.listings.CountCandidates(ctx, a.String(), filter)
}

func (q *paymentQueriesImpl) History(ctx context.Context, userID uuid.UUID) ([]HistoryItem, error) {
	grants, err := q.grants.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	items := make([]HistoryItem, len(grants))
	for i, g := range grants {
		items[i] = HistoryItem{Grant: g, Status: g.Status(now)}
	}
	return items, nil
}

// NoopAreaCache always misses. It is used when redis is disabled.
type NoopAreaCache struct{}

func (NoopAreaCache) Get(context.Context) ([]string, bool, error) { return nil, false, nil }
func (NoopAreaCache) Set(context.Context, []string) error         { return nil }
func (NoopAreaCache) Invalidate(context.Context) error            { return nil }
