package request

import (
	"roomfinder/internal/domain/grant"
	"roomfinder/internal/domain/listing"
)

// PurchaseRequest is the process-payment body. Coordinates are pointers so that a
// missing origin is rejected instead of read as (0, 0).
type PurchaseRequest struct {
	Area         string   `json:"area" binding:"required"`
	HousesToView int      `json:"housesToView" binding:"required,min=1"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PropertyType *string  `json:"propertyType"`
	MinPrice     *int     `json:"minPrice"`
	MaxPrice     *int     `json:"maxPrice"`
	Gender       *string  `json:"gender"`
}

func (r *PurchaseRequest) ToDomain() (grant.PurchaseRequest, error) {
	filter, err := listing.NewFilter(r.PropertyType, r.MinPrice, r.MaxPrice, r.Gender)
	if err != nil {
		return grant.PurchaseRequest{}, err
	}
	return grant.NewPurchaseRequest(r.Area, r.HousesToView, r.Latitude, r.Longitude, filter)
}

type QuoteQuery struct {
	Houses int `form:"houses" binding:"required,min=1"`
}

type AreaQuery struct {
	Area string `form:"area" binding:"required"`
}

type AvailableHousesQuery struct {
	Area         string  `form:"area" binding:"required"`
	PropertyType *string `form:"propertyType"`
	MinPrice     *int    `form:"minPrice"`
	MaxPrice     *int    `form:"maxPrice"`
	Gender       *string `form:"gender"`
}

func (q *AvailableHousesQuery) ToFilter() (listing.Filter, error) {
	return listing.NewFilter(q.PropertyType, q.MinPrice, q.MaxPrice, q.Gender)
}
