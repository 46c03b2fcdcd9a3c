package request

import (
	"time"

	"roomfinder/internal/domain/geo"
	"roomfinder/internal/domain/listing"
	"roomfinder/internal/pkg/patch"
	"roomfinder/internal/pkg/ptr"
	"roomfinder/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingSearchQuery struct {
	City         *string `form:"city"`
	PropertyType *string `form:"propertyType"`
	MinPrice     *int    `form:"minPrice"`
	MaxPrice     *int    `form:"maxPrice"`
	Gender       *string `form:"gender"`
	Limit        int     `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListingSearchQuery) ToSearch() (queries.ListingSearch, error) {
	filter, err := listing.NewFilter(q.PropertyType, q.MinPrice, q.MaxPrice, q.Gender)
	if err != nil {
		return queries.ListingSearch{}, err
	}

	return queries.ListingSearch{
		City:   ptr.NonZero(patch.CoalesceString(q.City, "")),
		Filter: filter,
		Limit:  q.Limit,
	}, nil
}

type CreateListingRequest struct {
	Title         string     `json:"title" binding:"required,max=200"`
	Description   string     `json:"description"`
	Rent          int        `json:"rent" binding:"required,min=1"`
	City          string     `json:"city" binding:"required,max=100"`
	Locality      string     `json:"locality"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	RoomType      string     `json:"roomType"`
	GenderPref    string     `json:"genderPreference"`
	AvailableFrom *time.Time `json:"availableFrom"`
}

// ToParams requires both coordinates or neither.
func (r *CreateListingRequest) ToParams(ownerID uuid.UUID) (listing.NewListingParams, error) {
	var position *geo.Point
	switch {
	case r.Latitude != nil && r.Longitude != nil:
		p, err := geo.NewPoint(*r.Latitude, *r.Longitude)
		if err != nil {
			return listing.NewListingParams{}, err
		}
		position = &p
	case r.Latitude != nil || r.Longitude != nil:
		return listing.NewListingParams{}, geo.ErrInvalidCoordinates
	}

	return listing.NewListingParams{
		OwnerID:       ownerID,
		Title:         r.Title,
		Description:   r.Description,
		Rent:          r.Rent,
		City:          r.City,
		Locality:      r.Locality,
		Position:      position,
		RoomType:      r.RoomType,
		GenderPref:    r.GenderPref,
		AvailableFrom: r.AvailableFrom,
	}, nil
}
