package response

import (
	"time"

	"roomfinder/internal/pkg/ptr"
	"roomfinder/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OwnerResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type ListingResponse struct {
	ID            uuid.UUID     `json:"id"`
	OwnerID       uuid.UUID     `json:"ownerId"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Rent          int           `json:"rent"`
	City          string        `json:"city"`
	Locality      string        `json:"locality"`
	Latitude      *float64      `json:"latitude,omitempty"`
	Longitude     *float64      `json:"longitude,omitempty"`
	RoomType      string        `json:"roomType"`
	GenderPref    string        `json:"genderPreference"`
	AvailableFrom *time.Time    `json:"availableFrom,omitempty"`
	Available     bool          `json:"available"`
	CreatedAt     time.Time     `json:"createdAt"`
	Owner         OwnerResponse `json:"owner"`
	Redacted      bool          `json:"redacted"`
	Rank          *int          `json:"rank,omitempty"`
	DistanceKm    *float64      `json:"distanceKm,omitempty"`
}

type ListingListResponse struct {
	HasAccess bool               `json:"hasAccess"`
	Listings  []*ListingResponse `json:"listings"`
	Count     int                `json:"count"`
}

type ListingDetailResponse struct {
	Listing     *ListingResponse `json:"listing"`
	ViewCounted bool             `json:"viewCounted"`
}

type CreateListingResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromGatedListing(g queries.GatedListing) (*ListingResponse, error) {
	var resp ListingResponse
	if err := copier.Copy(&resp, &g.Listing); err != nil {
		return nil, err
	}
	resp.Redacted = g.Redacted
	resp.Rank = g.Rank
	resp.DistanceKm = g.DistanceKm
	return &resp, nil
}

func FromPinnedListing(p *queries.PinnedListingView) (*ListingResponse, error) {
	return FromGatedListing(queries.GatedListing{Listing: p.Listing, Rank: ptr.Of(p.Rank), DistanceKm: p.DistanceKm})
}

func FromListingPage(page *queries.ListingPage) (*ListingListResponse, error) {
	items := make([]*ListingResponse, 0, len(page.Items))
	for _, item := range page.Items {
		resp, err := FromGatedListing(item)
		if err != nil {
			return nil, err
		}
		items = append(items, resp)
	}
	return &ListingListResponse{HasAccess: page.HasAccess, Listings: items, Count: len(items)}, nil
}
