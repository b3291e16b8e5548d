package handlers

import (
	"net/http"

	"logistics-api/internal/client/geocoding"
	"logistics-api/internal/db"
	"logistics-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// QuoteHandler prices deliveries: it estimates the distance between two
// addresses and composes the priced breakdown shown at checkout.
type QuoteHandler struct {
	common *CommonServices
}

// NewQuoteHandler creates a new QuoteHandler instance
func NewQuoteHandler(common *CommonServices) *QuoteHandler {
	return &QuoteHandler{common: common}
}

// CreateQuoteRequest represents the request body for pricing a delivery
type CreateQuoteRequest struct {
	PickupAddress   string   `json:"pickup_address" binding:"required"`
	DeliveryAddress string   `json:"delivery_address" binding:"required"`
	Adjustments     []string `json:"adjustments"`
	OrderValue      float64  `json:"order_value"`
	PromoCode       string   `json:"promo_code"`
	CustomerID      string   `json:"customer_id"`
}

// QuoteResponse represents the priced breakdown returned to the caller
type QuoteResponse struct {
	Object          string                    `json:"object"`
	PickupAddress   string                    `json:"pickup_address"`
	DeliveryAddress string                    `json:"delivery_address"`
	Breakdown       services.PricingBreakdown `json:"breakdown"`
}

// EstimateDistanceRequest represents the request body for a distance preview
type EstimateDistanceRequest struct {
	PickupAddress   string `json:"pickup_address" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	CustomerID      string `json:"customer_id"`
}

// CreateQuote godoc
// @Summary Price a delivery
// @Description Geocodes both addresses, measures the distance and returns the itemized pricing breakdown
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body CreateQuoteRequest true "Quote request"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.OrderValue < 0 {
		sendError(c, http.StatusBadRequest, "Order value cannot be negative", nil)
		return
	}

	customerID := uuid.Nil
	if req.CustomerID != "" {
		parsed, err := uuid.Parse(req.CustomerID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid customer ID format", err)
			return
		}
		customerID = parsed
	}

	estimate, err := h.common.distance.EstimateDistance(c.Request.Context(), req.PickupAddress, req.DeliveryAddress)
	if err != nil {
		if errors.Is(err, geocoding.ErrAddressNotFound) {
			sendError(c, http.StatusUnprocessableEntity, "Unable to find addresses, please check and try again", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to estimate distance", err)
		return
	}

	// An unknown or ineligible code silently prices without a discount; it
	// is not an error.
	var promotion *db.Promotion
	if req.PromoCode != "" {
		promotion, err = h.common.pricing.ValidatePromoCode(c.Request.Context(), req.PromoCode, customerID, req.OrderValue)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to validate promo code", err)
			return
		}
	}

	breakdown, err := h.common.pricing.Price(estimate.DistanceKm, req.Adjustments, req.OrderValue, promotion)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoZoneForDistance):
			sendError(c, http.StatusConflict, "No delivery zone covers this distance", err)
		case errors.Is(err, services.ErrNotInitialized):
			sendError(c, http.StatusServiceUnavailable, "Pricing configuration not loaded", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to price delivery", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, QuoteResponse{
		Object:          "quote",
		PickupAddress:   estimate.Pickup.DisplayName,
		DeliveryAddress: estimate.Delivery.DisplayName,
		Breakdown:       *breakdown,
	})
}

// EstimateDistance godoc
// @Summary Preview the distance between two addresses
// @Description Geocodes both addresses and returns the great-circle distance; stale debounced lookups are discarded
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body EstimateDistanceRequest true "Estimate request"
// @Success 200 {object} services.DistanceEstimate
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /quotes/distance [post]
func (h *QuoteHandler) EstimateDistance(c *gin.Context) {
	var req EstimateDistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// One ordering stream per customer; anonymous callers fall back to IP.
	key := req.CustomerID
	if key == "" {
		key = c.ClientIP()
	}

	estimate, err := h.common.distance.EstimateDistanceLatest(c.Request.Context(), key, req.PickupAddress, req.DeliveryAddress)
	if err != nil {
		switch {
		case errors.Is(err, geocoding.ErrAddressNotFound):
			sendError(c, http.StatusUnprocessableEntity, "Unable to find addresses, please check and try again", err)
		case errors.Is(err, services.ErrSuperseded):
			sendError(c, http.StatusConflict, "Estimate superseded by a newer request", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to estimate distance", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, estimate)
}
