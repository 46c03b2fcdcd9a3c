package queries

import (
	"context"
	"time"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/infra"
	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrGrantNotFound = errs.New("grant not found")

type GrantReadStore interface {
	FindLiveByArea(ctx context.Context, userID uuid.UUID, area string, now time.Time) (*GrantView, error)
	FindUnexpiredByArea(ctx context.Context, userID uuid.UUID, area string, now time.Time) (*GrantView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GrantView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*GrantView, error)
	ListPinned(ctx context.Context, grantID uuid.UUID) ([]*PinnedListingView, error)
}

type AccessibleListings struct {
	HasActivePlan bool
	Access        *AccessState
	Listings      []*PinnedListingView
}

type AccessQueries interface {
	CheckAccess(ctx context.Context, userID uuid.UUID, area string) (*AccessState, error)
	ViewingAccess(ctx context.Context, userID uuid.UUID, area string) (*AccessState, error)
	AccessibleListings(ctx context.Context, userID uuid.UUID, area string) (*AccessibleListings, error)
}

type accessQueriesImpl struct {
	grants GrantReadStore
	clock  clock.Clock
}

func NewAccessQueries(grants GrantReadStore, clk clock.Clock) AccessQueries {
	return &accessQueriesImpl{grants: grants, clock: clk}
}

// CheckAccess reports whether the user holds a live grant for area. Having none is not an error.
func (q *accessQueriesImpl) CheckAccess(ctx context.Context, userID uuid.UUID, area string) (*AccessState, error) {
	a, err := grant.NewArea(area)
	if err != nil {
		return nil, errs.Mark(err, grant.ErrInvalidRequest)
	}

	now := q.clock.Now()
	state := &AccessState{HasAccess: false, Area: a.String()}

	g, err := q.grants.FindLiveByArea(ctx, userID, a.String(), now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return state, nil
		}
		return nil, err
	}

	// the query already filters on expiry and quota; re-derive so a stale row can never grant access
	if !g.Active || g.Status(now) != grant.StatusActive {
		return state, nil
	}

	state.HasAccess = true
	state.Grant = g
	state.Remaining = g.Remaining()
	state.DaysRemaining = daysUntil(now, g.ExpiresAt)
	return state, nil
}

// ViewingAccess resolves the grant whose pinned set the user may read. Unlike CheckAccess it
// keeps exhausted grants until they expire: Grant is set for any active, unexpired grant and
// HasAccess still reports whether quota remains.
func (q *accessQueriesImpl) ViewingAccess(ctx context.Context, userID uuid.UUID, area string) (*AccessState, error) {
	a, err := grant.NewArea(area)
	if err != nil {
		return nil, errs.Mark(err, grant.ErrInvalidRequest)
	}

	now := q.clock.Now()
	state := &AccessState{HasAccess: false, Area: a.String()}

	g, err := q.grants.FindUnexpiredByArea(ctx, userID, a.String(), now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return state, nil
		}
		return nil, err
	}
	if !g.Active || g.Status(now) == grant.StatusExpired {
		return state, nil
	}

	state.Grant = g
	state.HasAccess = g.Status(now) == grant.StatusActive
	state.Remaining = g.Remaining()
	state.DaysRemaining = daysUntil(now, g.ExpiresAt)
	return state, nil
}

func (q *accessQueriesImpl) AccessibleListings(ctx context.Context, userID uuid.UUID, area string) (*AccessibleListings, error) {
	state, err := q.CheckAccess(ctx, userID, area)
	if err != nil {
		return nil, err
	}
	if !state.HasAccess {
		return &AccessibleListings{HasActivePlan: false, Access: state, Listings: []*PinnedListingView{}}, nil
	}

	pinned, err := q.grants.ListPinned(ctx, state.Grant.ID)
	if err != nil {
		return nil, err
	}
	return &AccessibleListings{HasActivePlan: true, Access: state, Listings: pinned}, nil
}

// daysUntil rounds a partial day up.
func daysUntil(now, end time.Time) int {
	d := end.Sub(now)
	if d <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	return int((d + day - 1) / day)
}
