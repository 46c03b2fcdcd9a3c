//go:build unit

package grant_test

import (
	"strings"
	"testing"
	"time"

	"roomfinder/internal/domain/geo"
	"roomfinder/internal/domain/grant"
	"roomfinder/internal/domain/listing"
	"roomfinder/internal/domain/pricing"
	"roomfinder/internal/pkg/errs"
	"roomfinder/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func pool(n int) []listing.Candidate {
	out := make([]listing.Candidate, n)
	for i := range out {
		// each step north is roughly 1.1km further from the builder origin
		out[i] = builder.NewListingBuilder().At(19.0760+float64(i+1)*0.01, 72.8777).BuildCandidate()
	}
	return out
}

func TestNewPurchaseRequest(t *testing.T) {
	type testCase struct {
		name   string
		mutate func(*builder.PurchaseBuilder)
		errIs  error
	}

	cases := []testCase{
		{name: "valid request"},
		{
			name:   "blank area",
			mutate: func(b *builder.PurchaseBuilder) { b.Area = "   " },
			errIs:  grant.ErrInvalidArea,
		},
		{
			name:   "area too long",
			mutate: func(b *builder.PurchaseBuilder) { b.Area = strings.Repeat("a", 101) },
			errIs:  grant.ErrInvalidArea,
		},
		{
			name:   "zero houses",
			mutate: func(b *builder.PurchaseBuilder) { b.HousesToView = 0 },
			errIs:  grant.ErrInvalidQuantity,
		},
		{
			name:   "missing latitude",
			mutate: func(b *builder.PurchaseBuilder) { b.Latitude = nil },
			errIs:  grant.ErrMissingOrigin,
		},
		{
			name:   "missing longitude",
			mutate: func(b *builder.PurchaseBuilder) { b.Longitude = nil },
			errIs:  grant.ErrMissingOrigin,
		},
		{
			name: "latitude out of range",
			mutate: func(b *builder.PurchaseBuilder) {
				lat := 91.0
				b.Latitude = &lat
			},
			errIs: geo.ErrInvalidCoordinates,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewPurchaseBuilder()
			if c.mutate != nil {
				b.With(c.mutate)
			}

			req, err := b.BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, "Mumbai", req.Area().String())
				assert.Equal(t, 5, req.Quantity())
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, grant.ErrInvalidRequest))
		})
	}
}

func TestArea(t *testing.T) {
	a, err := grant.NewArea("  Navi Mumbai ")
	require.NoError(t, err)
	b, err := grant.NewArea("navi mumbai")
	require.NoError(t, err)

	assert.Equal(t, "Navi Mumbai", a.String())
	assert.Equal(t, "navi mumbai", a.Key())
	assert.True(t, a.Equal(b))
}

func TestNewGrant(t *testing.T) {
	policy := builder.DefaultPolicy()
	userID := uuid.New()

	t.Run("pins the nearest listings and sets the window", func(t *testing.T) {
		candidates := pool(8)

		g, err := builder.NewPurchaseBuilder().BuildGrant(userID, policy, candidates, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, g.ID())
		assert.Equal(t, userID, g.UserID())
		assert.Equal(t, 5, g.Quantity())
		assert.Equal(t, 40, g.PricePaid())
		assert.Equal(t, now, g.CreatedAt())
		assert.Equal(t, now.Add(3*24*time.Hour), g.ExpiresAt())
		assert.Equal(t, 3, g.DurationDays())
		assert.True(t, g.Active())
		assert.Equal(t, 0, g.Consumed())
		assert.Equal(t, 5, g.Remaining())

		require.Equal(t, 5, g.PinnedCount())
		for i, p := range g.Pinned() {
			assert.Equal(t, candidates[i].ID, p.ListingID)
			assert.Equal(t, i+1, p.Rank)
			assert.True(t, p.Distance.IsKnown())
		}
		assert.True(t, g.IsPinned(candidates[0].ID))
		assert.False(t, g.IsPinned(candidates[7].ID))
	})

	t.Run("pins the whole pool when it is smaller than the purchase", func(t *testing.T) {
		g, err := builder.NewPurchaseBuilder().BuildGrant(userID, policy, pool(2), now)
		require.NoError(t, err)

		assert.Equal(t, 5, g.Quantity())
		assert.Equal(t, 2, g.PinnedCount())
	})

	t.Run("rejects an empty pool", func(t *testing.T) {
		_, err := builder.NewPurchaseBuilder().BuildGrant(userID, policy, nil, now)
		assert.ErrorIs(t, err, grant.ErrEmptyPinnedSet)
	})

	t.Run("rejects more pins than purchased", func(t *testing.T) {
		req, err := builder.NewPurchaseBuilder().With(func(b *builder.PurchaseBuilder) { b.HousesToView = 1 }).BuildDomain()
		require.NoError(t, err)
		quote, err := policy.Quote(1)
		require.NoError(t, err)

		pinned := grant.PinnedFromRanked(geo.Rank(req.Origin(), pool(2), listing.CandidatePosition))
		_, err = grant.New(userID, req, quote, pinned, now)
		assert.ErrorIs(t, err, grant.ErrPinnedOverflow)
	})

	t.Run("rejects a quote for another quantity", func(t *testing.T) {
		req, err := builder.NewPurchaseBuilder().BuildDomain()
		require.NoError(t, err)

		pinned := grant.PinnedFromRanked(grant.SelectNearest(req.Origin(), pool(3), 5))
		_, err = grant.New(userID, req, pricing.Quote{Quantity: 3, Price: 30, DurationDays: 1}, pinned, now)
		assert.ErrorIs(t, err, grant.ErrInvalidQuantity)
	})

	t.Run("pinned set is not shared with the caller's slice", func(t *testing.T) {
		req, err := builder.NewPurchaseBuilder().BuildDomain()
		require.NoError(t, err)
		quote, err := policy.Quote(5)
		require.NoError(t, err)

		pinned := grant.PinnedFromRanked(grant.SelectNearest(req.Origin(), pool(3), 5))
		first := pinned[0].ListingID
		g, err := grant.New(userID, req, quote, pinned, now)
		require.NoError(t, err)

		pinned[0].ListingID = uuid.New()
		assert.Equal(t, first, g.Pinned()[0].ListingID)
	})
}

func TestSelectNearest(t *testing.T) {
	origin := geo.Point{Lat: 19.0760, Lng: 72.8777}
	near := builder.NewListingBuilder().At(19.08, 72.88).BuildCandidate()
	mid := builder.NewListingBuilder().At(19.15, 72.85).BuildCandidate()
	far := builder.NewListingBuilder().At(19.30, 72.85).BuildCandidate()
	unlocated := builder.NewListingBuilder().WithoutCoordinates().BuildCandidate()

	ranked := grant.SelectNearest(origin, []listing.Candidate{unlocated, far, near, mid}, 3)

	require.Len(t, ranked, 3)
	assert.Equal(t, near.ID, ranked[0].Item.ID)
	assert.Equal(t, mid.ID, ranked[1].Item.ID)
	assert.Equal(t, far.ID, ranked[2].Item.ID)

	all := grant.SelectNearest(origin, []listing.Candidate{unlocated, far}, 5)
	require.Len(t, all, 2)
	assert.Equal(t, far.ID, all[0].Item.ID)
	assert.Equal(t, unlocated.ID, all[1].Item.ID)
	assert.Nil(t, all[1].Distance.KmPtr())

	pinned := grant.PinnedFromRanked(all)
	assert.Equal(t, 2, pinned[1].Rank)
	assert.Equal(t, unlocated.ID, pinned[1].ListingID)
}

func TestDeriveStatus(t *testing.T) {
	expires := now.Add(24 * time.Hour)

	cases := []struct {
		name     string
		at       time.Time
		consumed int
		want     grant.Status
	}{
		{name: "fresh grant", at: now, consumed: 0, want: grant.StatusActive},
		{name: "partly used", at: now, consumed: 4, want: grant.StatusActive},
		{name: "all views used", at: now, consumed: 5, want: grant.StatusExhausted},
		{name: "at expiry instant", at: expires, consumed: 0, want: grant.StatusExpired},
		{name: "expired wins over exhausted", at: expires.Add(time.Second), consumed: 5, want: grant.StatusExpired},
		{name: "one nanosecond before expiry", at: expires.Add(-time.Nanosecond), consumed: 0, want: grant.StatusActive},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, grant.DeriveStatus(c.at, expires, c.consumed, 5))
		})
	}
}

func TestGrantIsLive(t *testing.T) {
	expires := now.Add(24 * time.Hour)
	pinned := []grant.PinnedListing{{ListingID: uuid.New(), Rank: 1, Distance: geo.Known(1)}}
	reconstruct := func(active bool, consumed int) *grant.Grant {
		return grant.Reconstruct(uuid.New(), uuid.New(), grant.Area{}, 5, 40, geo.Point{}, now, expires, active, consumed, pinned)
	}

	assert.True(t, reconstruct(true, 0).IsLive(now))
	assert.False(t, reconstruct(false, 0).IsLive(now), "deactivated by the sweeper")
	assert.False(t, reconstruct(true, 5).IsLive(now))
	assert.False(t, reconstruct(true, 0).IsLive(expires))
	assert.True(t, reconstruct(true, 0).IsExpired(expires))

	over := reconstruct(true, 7)
	assert.Equal(t, 0, over.Remaining())
	assert.Equal(t, grant.StatusExhausted, over.Status(now))
}
