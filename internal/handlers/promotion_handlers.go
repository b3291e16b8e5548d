package handlers

import (
	"net/http"
	"time"

	"logistics-api/internal/db"
	"logistics-api/internal/helpers"
	"logistics-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PromotionHandler handles promotion validation, redemption and the admin
// configuration surface for promotions.
type PromotionHandler struct {
	common *CommonServices
}

// NewPromotionHandler creates a new PromotionHandler instance
func NewPromotionHandler(common *CommonServices) *PromotionHandler {
	return &PromotionHandler{common: common}
}

// PromotionResponse represents the standardized API response for promotions
type PromotionResponse struct {
	ID             string   `json:"id"`
	Object         string   `json:"object"`
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	DiscountKind   string   `json:"discount_kind"`
	DiscountValue  float64  `json:"discount_value"`
	MinOrderValue  float64  `json:"min_order_value"`
	MaxDiscount    *float64 `json:"max_discount,omitempty"`
	Active         bool     `json:"active"`
	FirstOrderOnly bool     `json:"first_order_only"`
	StartDate      int64    `json:"start_date"`
	EndDate        *int64   `json:"end_date,omitempty"`
	UsageLimit     *int32   `json:"usage_limit,omitempty"`
	UsageCount     int32    `json:"usage_count"`
	CreatedAt      int64    `json:"created_at"`
	UpdatedAt      int64    `json:"updated_at"`
}

// CreatePromotionRequest represents the request body for creating a promotion
type CreatePromotionRequest struct {
	Code           string     `json:"code" binding:"required"`
	Name           string     `json:"name" binding:"required"`
	DiscountKind   string     `json:"discount_kind" binding:"required,oneof=flat percentage free_delivery"`
	DiscountValue  float64    `json:"discount_value"`
	MinOrderValue  float64    `json:"min_order_value"`
	MaxDiscount    *float64   `json:"max_discount"`
	Active         bool       `json:"active"`
	FirstOrderOnly bool       `json:"first_order_only"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	EndDate        *time.Time `json:"end_date"`
	UsageLimit     *int32     `json:"usage_limit"`
}

// UpdatePromotionRequest represents the request body for updating a promotion
type UpdatePromotionRequest struct {
	Code           *string    `json:"code,omitempty"`
	Name           *string    `json:"name,omitempty"`
	DiscountKind   *string    `json:"discount_kind,omitempty" binding:"omitempty,oneof=flat percentage free_delivery"`
	DiscountValue  *float64   `json:"discount_value,omitempty"`
	MinOrderValue  *float64   `json:"min_order_value,omitempty"`
	MaxDiscount    *float64   `json:"max_discount,omitempty"`
	Active         *bool      `json:"active,omitempty"`
	FirstOrderOnly *bool      `json:"first_order_only,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	UsageLimit     *int32     `json:"usage_limit,omitempty"`
}

// ValidatePromotionRequest represents the request body for validating a code
type ValidatePromotionRequest struct {
	Code       string  `json:"code" binding:"required"`
	CustomerID string  `json:"customer_id"`
	OrderValue float64 `json:"order_value"`
}

// ValidatePromotionResponse reports whether a code applies to an order
type ValidatePromotionResponse struct {
	Valid     bool               `json:"valid"`
	Promotion *PromotionResponse `json:"promotion,omitempty"`
}

func toPromotionResponse(p db.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:             p.ID.String(),
		Object:         "promotion",
		Code:           p.Code,
		Name:           p.Name,
		DiscountKind:   p.DiscountKind,
		DiscountValue:  p.DiscountValue,
		MinOrderValue:  p.MinOrderValue,
		MaxDiscount:    helpers.Float8Ptr(p.MaxDiscount),
		Active:         p.Active,
		FirstOrderOnly: p.FirstOrderOnly,
		StartDate:      helpers.UnixOrZero(p.StartDate),
		EndDate:        helpers.UnixPtr(p.EndDate),
		UsageLimit:     helpers.Int4Ptr(p.UsageLimit),
		UsageCount:     p.UsageCount,
		CreatedAt:      helpers.UnixOrZero(p.CreatedAt),
		UpdatedAt:      helpers.UnixOrZero(p.UpdatedAt),
	}
}

// ValidatePromotion godoc
// @Summary Validate a promo code
// @Description Checks code eligibility for the given customer and order value; ineligible codes return valid=false, not an error
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body ValidatePromotionRequest true "Validation request"
// @Success 200 {object} ValidatePromotionResponse
// @Failure 400 {object} ErrorResponse
// @Router /promotions/validate [post]
func (h *PromotionHandler) ValidatePromotion(c *gin.Context) {
	var req ValidatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
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

	promo, err := h.common.pricing.ValidatePromoCode(c.Request.Context(), req.Code, customerID, req.OrderValue)
	if err != nil {
		if errors.Is(err, services.ErrNotInitialized) {
			sendError(c, http.StatusServiceUnavailable, "Pricing configuration not loaded", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to validate promo code", err)
		return
	}

	resp := ValidatePromotionResponse{Valid: promo != nil}
	if promo != nil {
		pr := toPromotionResponse(*promo)
		resp.Promotion = &pr
	}
	sendSuccess(c, http.StatusOK, resp)
}

// RedeemPromotion godoc
// @Summary Record a promo redemption
// @Description Fire-and-forget usage-counter increment after an order is placed; always accepted
// @Tags promotions
// @Produce json
// @Param code path string true "Promo code"
// @Success 202 {object} SuccessResponse
// @Router /promotions/{code}/redeem [post]
func (h *PromotionHandler) RedeemPromotion(c *gin.Context) {
	code := c.Param("code")

	customerID := uuid.Nil
	if raw := c.Query("customer_id"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			customerID = parsed
		}
	}

	// Counter drift is accepted over blocking an already-placed order.
	h.common.pricing.IncrementPromoUsage(code, customerID)
	sendSuccessMessage(c, http.StatusAccepted, "Redemption recorded")
}

// ListPromotions godoc
// @Summary List promotions
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/promotions [get]
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.common.db.ListPromotions(c.Request.Context())
	if err != nil {
		handleDBError(c, err, "Promotions not found")
		return
	}

	items := make([]PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		items = append(items, toPromotionResponse(p))
	}
	sendList(c, items)
}

// GetPromotion godoc
// @Summary Get promotion by ID
// @Tags admin
// @Produce json
// @Param promotion_id path string true "Promotion ID"
// @Success 200 {object} PromotionResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/promotions/{promotion_id} [get]
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("promotion_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid promotion ID format", err)
		return
	}

	promotion, err := h.common.db.GetPromotion(c.Request.Context(), id)
	if err != nil {
		handleDBError(c, err, "Promotion not found")
		return
	}
	sendSuccess(c, http.StatusOK, toPromotionResponse(promotion))
}

// CreatePromotion godoc
// @Summary Create a promotion
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreatePromotionRequest true "Promotion"
// @Success 201 {object} PromotionResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/promotions [post]
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	promotion, err := h.common.db.CreatePromotion(c.Request.Context(), db.CreatePromotionParams{
		Code:           req.Code,
		Name:           req.Name,
		DiscountKind:   req.DiscountKind,
		DiscountValue:  req.DiscountValue,
		MinOrderValue:  req.MinOrderValue,
		MaxDiscount:    helpers.Float8FromPtr(req.MaxDiscount),
		Active:         req.Active,
		FirstOrderOnly: req.FirstOrderOnly,
		StartDate:      helpers.TimestamptzFromTime(req.StartDate),
		EndDate:        helpers.TimestamptzFromTimePtr(req.EndDate),
		UsageLimit:     helpers.Int4FromPtr(req.UsageLimit),
	})
	if err != nil {
		handleDBError(c, err, "Promotion not found")
		return
	}

	h.common.refreshPricing(c)
	sendSuccess(c, http.StatusCreated, toPromotionResponse(promotion))
}

// UpdatePromotion godoc
// @Summary Update a promotion
// @Tags admin
// @Accept json
// @Produce json
// @Param promotion_id path string true "Promotion ID"
// @Param request body UpdatePromotionRequest true "Fields to update"
// @Success 200 {object} PromotionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/promotions/{promotion_id} [put]
func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("promotion_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid promotion ID format", err)
		return
	}

	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	promotion, err := h.common.db.UpdatePromotion(c.Request.Context(), db.UpdatePromotionParams{
		ID:             id,
		Code:           req.Code,
		Name:           req.Name,
		DiscountKind:   req.DiscountKind,
		DiscountValue:  req.DiscountValue,
		MinOrderValue:  req.MinOrderValue,
		MaxDiscount:    helpers.Float8FromPtr(req.MaxDiscount),
		Active:         req.Active,
		FirstOrderOnly: req.FirstOrderOnly,
		StartDate:      helpers.TimestamptzFromTimePtr(req.StartDate),
		EndDate:        helpers.TimestamptzFromTimePtr(req.EndDate),
		UsageLimit:     helpers.Int4FromPtr(req.UsageLimit),
	})
	if err != nil {
		handleDBError(c, err, "Promotion not found")
		return
	}

	h.common.refreshPricing(c)
	sendSuccess(c, http.StatusOK, toPromotionResponse(promotion))
}

// DeletePromotion godoc
// @Summary Delete a promotion
// @Tags admin
// @Produce json
// @Param promotion_id path string true "Promotion ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/promotions/{promotion_id} [delete]
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("promotion_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid promotion ID format", err)
		return
	}

	if err := h.common.db.DeletePromotion(c.Request.Context(), id); err != nil {
		handleDBError(c, err, "Promotion not found")
		return
	}

	h.common.refreshPricing(c)
	sendSuccessMessage(c, http.StatusOK, "Promotion deleted successfully")
}
