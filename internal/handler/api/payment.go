package api

import (
	"net/http"

	"roomfinder/internal/domain/grant"
	reqdto "roomfinder/internal/handler/dto/request"
	resdto "roomfinder/internal/handler/dto/response"
	"roomfinder/internal/handler/httperr"
	"roomfinder/internal/handler/middleware"
	"roomfinder/internal/pkg/errs"
	"roomfinder/internal/usecase/commands"
	"roomfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const purchaseFailedMessage = "Payment failed, please try again"

type PaymentHandler struct {
	entitlements commands.EntitlementCommands
	sweeper      commands.SweeperCommands
	payments     queries.PaymentQueries
	access       queries.AccessQueries
}

func NewPaymentHandler(entitlements commands.EntitlementCommands, sweeper commands.SweeperCommands, payments queries.PaymentQueries, access queries.AccessQueries) *PaymentHandler {
	return &PaymentHandler{
		entitlements: entitlements,
		sweeper:      sweeper,
		payments:     payments,
		access:       access,
	}
}

// @Summary Pricing table
// @Description Breakpoint prices, the per-house rate beyond the table, and access durations
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.PricingResponse
// @Router /payments/pricing [get]
func (h *PaymentHandler) Pricing(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPricingCatalog(h.payments.Pricing()))
}

// @Summary Quote
// @Description Price and access duration for a number of houses
// @Tags payments
// @Produce json
// @Param houses query int true "Number of houses"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /payments/quote [get]
func (h *PaymentHandler) Quote(c *gin.Context) {
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "houses must be a positive integer", nil)
		return
	}

	quote, err := h.payments.Quote(q.Houses)
	if err != nil {
		if errs.Is(err, grant.ErrInvalidRequest) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid number of houses", err.Error())
			return
		}
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Areas
// @Description Cities that currently have available listings
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.AreasResponse
// @Router /payments/areas [get]
func (h *PaymentHandler) Areas(c *gin.Context) {
	areas, err := h.payments.Areas(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AreasResponse{Areas: areas})
}

// @Summary Available houses
// @Description Size of the candidate pool a purchase would draw from
// @Tags payments
// @Produce json
// @Param area query string true "Area"
// @Param propertyType query string false "Room type"
// @Param minPrice query int false "Minimum rent"
// @Param maxPrice query int false "Maximum rent"
// @Success 200 {object} resdto.AvailableHousesResponse
// @Failure 400 {object} httperr.Response
// @Router /payments/available-houses [get]
func (h *PaymentHandler) AvailableHouses(c *gin.Context) {
	var q reqdto.AvailableHousesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", err.Error())
		return
	}

	count, err := h.payments.AvailableCount(c.Request.Context(), q.Area, filter)
	if err != nil {
		if errs.Is(err, grant.ErrInvalidRequest) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid area", nil)
			return
		}
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailableHousesResponse{Area: q.Area, Available: count})
}

// @Summary Check access
// @Description Whether the caller holds a live grant for an area
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param area query string true "Area"
// @Success 200 {object} resdto.AccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /payments/check-access [get]
func (h *PaymentHandler) CheckAccess(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortInternal(c, errs.New("user_id missing from context"))
		return
	}

	var q reqdto.AreaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "area is required", nil)
		return
	}

	state, err := h.access.CheckAccess(c.Request.Context(), userID, q.Area)
	if err != nil {
		if errs.Is(err, grant.ErrInvalidRequest) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid area", nil)
			return
		}
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccessState(state))
}

// @Summary Process payment
// @Description Purchase access to the nearest matching listings in an area
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/process-payment [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortInternal(c, errs.New("user_id missing from context"))
		return
	}

	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	purchase, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid purchase request", err.Error())
		return
	}

	result, err := h.entitlements.Purchase(c.Request.Context(), userID, purchase)
	if err != nil {
		switch {
		case errs.Is(err, grant.ErrInvalidRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid purchase request", err.Error())
		case errs.Is(err, commands.ErrNoMatchingListings):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No houses available in this area for the selected filters", nil)
		default:
			// transaction failures never leak internals
			httperr.AbortWithError(c, http.StatusInternalServerError, err, purchaseFailedMessage, nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(result))
}

// @Summary Payment history
// @Description Caller's grants, newest first, with derived status
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.HistoryResponse
// @Failure 401 {object} httperr.Response
// @Router /payments/history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortInternal(c, errs.New("user_id missing from context"))
		return
	}

	items, err := h.payments.History(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistory(items))
}

// @Summary Accessible houses
// @Description Full details of the caller's pinned listings for an area
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param area query string true "Area"
// @Success 200 {object} resdto.AccessibleHousesResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /payments/accessible-houses [get]
func (h *PaymentHandler) AccessibleHouses(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortInternal(c, errs.New("user_id missing from context"))
		return
	}

	var q reqdto.AreaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "area is required", nil)
		return
	}

	result, err := h.access.AccessibleListings(c.Request.Context(), userID, q.Area)
	if err != nil {
		if errs.Is(err, grant.ErrInvalidRequest) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid area", nil)
			return
		}
		httperr.AbortInternal(c, err)
		return
	}

	resp, err := resdto.FromAccessibleListings(result)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Sweep expired grants
// @Description Deactivate every expired grant now
// @Tags payments
// @Produce json
// @Param X-Admin-Token header string true "Admin token"
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} httperr.Response
// @Router /payments/sweep [post]
func (h *PaymentHandler) Sweep(c *gin.Context) {
	n, err := h.sweeper.SweepExpired(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SweepResponse{Deactivated: n})
}
