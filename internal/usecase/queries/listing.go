package queries

import (
	"context"
	"log/slog"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/domain/listing"
	"roomfinder/internal/infra"
	"roomfinder/internal/pkg/errs"
	"roomfinder/internal/pkg/ptr"
	"roomfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.New("listing not found")

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	List(ctx context.Context, search ListingSearch) ([]*ListingView, error)
	CountCandidates(ctx context.Context, area string, filter listing.Filter) (int64, error)
	ListAreas(ctx context.Context) ([]string, error)
}

// ViewRecorder charges a detail view against a grant.
type ViewRecorder interface {
	RecordView(ctx context.Context, userID, grantID, listingID uuid.UUID) (*shared.ViewOutcome, error)
}

// GatedListing is a listing as the caller is allowed to see it.
type GatedListing struct {
	Listing    ListingView
	Redacted   bool
	Rank       *int
	DistanceKm *float64
}

type ListingPage struct {
	Items     []GatedListing
	HasAccess bool
	Access    *AccessState
}

type ListingDetail struct {
	Item        GatedListing
	ViewCounted bool
}

// ListingQueries is the access gate in front of listing reads.
type ListingQueries interface {
	List(ctx context.Context, caller *uuid.UUID, search ListingSearch) (*ListingPage, error)
	Detail(ctx context.Context, caller *uuid.UUID, id uuid.UUID) (*ListingDetail, error)
}

type listingQueriesImpl struct {
	listings ListingReadStore
	grants   GrantReadStore
	access   AccessQueries
	recorder ViewRecorder
}

func NewListingQueries(listings ListingReadStore, grants GrantReadStore, access AccessQueries, recorder ViewRecorder) ListingQueries {
	return &listingQueriesImpl{
		listings: listings,
		grants:   grants,
		access:   access,
		recorder: recorder,
	}
}

// List returns the caller's pinned set when they hold an unexpired grant for the searched city,
// otherwise every matching listing redacted, newest first.
func (q *listingQueriesImpl) List(ctx context.Context, caller *uuid.UUID, search ListingSearch) (*ListingPage, error) {
	search.Limit = normalizeLimit(search.Limit)

	if caller != nil && search.City != nil {
		state, err := q.access.ViewingAccess(ctx, *caller, *search.City)
		if err != nil && !errs.Is(err, grant.ErrInvalidRequest) {
			return nil, err
		}
		if err == nil && state.Grant != nil {
			pinned, err := q.grants.ListPinned(ctx, state.Grant.ID)
			if err != nil {
				return nil, err
			}
			items := make([]GatedListing, 0, len(pinned))
			for _, p := range pinned {
				items = append(items, fromPinned(p))
			}
			return &ListingPage{Items: items, HasAccess: true, Access: state}, nil
		}
	}

	views, err := q.listings.List(ctx, search)
	if err != nil {
		return nil, err
	}
	items := make([]GatedListing, 0, len(views))
	for _, v := range views {
		items = append(items, GatedListing{Listing: Redact(*v), Redacted: true})
	}
	return &ListingPage{Items: items, HasAccess: false}, nil
}

// Detail returns full fields only for a listing pinned by the caller's unexpired grant, and charges
// the view while quota remains. Any other caller gets the redacted projection rather than an error.
func (q *listingQueriesImpl) Detail(ctx context.Context, caller *uuid.UUID, id uuid.UUID) (*ListingDetail, error) {
	view, err := q.listings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	redacted := &ListingDetail{Item: GatedListing{Listing: Redact(*view), Redacted: true}}
	if caller == nil {
		return redacted, nil
	}

	state, err := q.access.ViewingAccess(ctx, *caller, view.City)
	if err != nil {
		return nil, err
	}
	if state.Grant == nil {
		return redacted, nil
	}

	pinned, err := q.grants.ListPinned(ctx, state.Grant.ID)
	if err != nil {
		return nil, err
	}
	var entry *PinnedListingView
	for _, p := range pinned {
		if p.Listing.ID == id {
			entry = p
			break
		}
	}
	if entry == nil {
		return redacted, nil
	}

	detail := &ListingDetail{Item: fromPinned(entry)}
	outcome, err := q.recorder.RecordView(ctx, *caller, state.Grant.ID, id)
	switch {
	case err == nil:
		detail.ViewCounted = outcome.Counted
	case errs.Is(err, grant.ErrNotEntitled):
		return redacted, nil
	default:
		slog.Error("failed to record listing view",
			"user_id", *caller,
			"grant_id", state.Grant.ID,
			"listing_id", id,
			"error", err.Error())
		return nil, err
	}
	return detail, nil
}

func fromPinned(p *PinnedListingView) GatedListing {
	return GatedListing{
		Listing:    p.Listing,
		Redacted:   false,
		Rank:       ptr.Of(p.Rank),
		DistanceKm: p.DistanceKm,
	}
}

// Redact replaces description and owner contact fields with the placeholder.
func Redact(v ListingView) ListingView {
	placeholder := listing.RedactedPlaceholder
	v.Description = placeholder
	v.Owner = OwnerView{
		Name:  placeholder,
		Email: placeholder,
		Phone: ptr.Of(placeholder),
	}
	return v
}
