package api

import (
	"net/http"

	reqdto "roomfinder/internal/handler/dto/request"
	resdto "roomfinder/internal/handler/dto/response"
	"roomfinder/internal/handler/httperr"
	"roomfinder/internal/handler/middleware"
	"roomfinder/internal/pkg/errs"
	"roomfinder/internal/usecase/commands"
	"roomfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	commands commands.ListingCommands
	queries  queries.ListingQueries
}

func NewListingHandler(listingCommands commands.ListingCommands, listingQueries queries.ListingQueries) *ListingHandler {
	return &ListingHandler{
		commands: listingCommands,
		queries:  listingQueries,
	}
}

// @Summary List listings
// @Description Listings in a city. Contact details are hidden unless the caller holds a live grant for the city.
// @Tags listings
// @Produce json
// @Param city query string false "City"
// @Param propertyType query string false "Room type"
// @Param minPrice query int false "Minimum rent"
// @Param maxPrice query int false "Maximum rent"
// @Param gender query string false "Gender preference"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ListingListResponse
// @Failure 400 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	var q reqdto.ListingSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	search, err := q.ToSearch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", err.Error())
		return
	}

	page, err := h.queries.List(c.Request.Context(), middleware.GetOptionalUserID(c), search)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	resp, err := resdto.FromListingPage(page)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get listing
// @Description A single listing. Full details, and a charged view, only for listings pinned by the caller's live grant.
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing ID format", nil)
		return
	}

	detail, err := h.queries.Detail(c.Request.Context(), middleware.GetOptionalUserID(c), id)
	if err != nil {
		if errs.Is(err, queries.ErrListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
			return
		}
		httperr.AbortInternal(c, err)
		return
	}

	item, err := resdto.FromGatedListing(detail.Item)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ListingDetailResponse{Listing: item, ViewCounted: detail.ViewCounted})
}

// @Summary Create listing
// @Description Publish a new listing. Sellers only.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.CreateListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortInternal(c, errs.New("user_id missing from context"))
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortInternal(c, errs.New("role missing from context"))
		return
	}

	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	params, err := req.ToParams(userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing", err.Error())
		return
	}

	result, err := h.commands.Create(c.Request.Context(), userID, role, params)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only sellers can create listings", nil)
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing", nil)
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateListingResponse{ID: result.ListingID})
}
