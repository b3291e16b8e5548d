package handlers

import (
	"net/http"

	"logistics-api/internal/db"
	"logistics-api/internal/helpers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdjustmentHandler handles order-type adjustment configuration
type AdjustmentHandler struct {
	common *CommonServices
}

// NewAdjustmentHandler creates a new AdjustmentHandler instance
func NewAdjustmentHandler(common *CommonServices) *AdjustmentHandler {
	return &AdjustmentHandler{common: common}
}

// AdjustmentResponse represents the standardized API response for adjustments
type AdjustmentResponse struct {
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Value     float64 `json:"value"`
	Active    bool    `json:"active"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

// CreateAdjustmentRequest represents the request body for creating an adjustment
type CreateAdjustmentRequest struct {
	Name   string  `json:"name" binding:"required"`
	Kind   string  `json:"kind" binding:"required,oneof=flat percentage"`
	Value  float64 `json:"value" binding:"required"`
	Active bool    `json:"active"`
}

// UpdateAdjustmentRequest represents the request body for updating an adjustment
type UpdateAdjustmentRequest struct {
	Name   *string  `json:"name,omitempty"`
	Kind   *string  `json:"kind,omitempty" binding:"omitempty,oneof=flat percentage"`
	Value  *float64 `json:"value,omitempty"`
	Active *bool    `json:"active,omitempty"`
}

func toAdjustmentResponse(a db.OrderTypeAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:        a.ID.String(),
		Object:    "order_type_adjustment",
		Name:      a.Name,
		Kind:      a.Kind,
		Value:     a.Value,
		Active:    a.Active,
		CreatedAt: helpers.UnixOrZero(a.CreatedAt),
		UpdatedAt: helpers.UnixOrZero(a.UpdatedAt),
	}
}

// ListAdjustments godoc
// @Summary List order-type adjustments
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/adjustments [get]
func (h *AdjustmentHandler) ListAdjustments(c *gin.Context) {
	adjustments, err := h.common.db.ListOrderTypeAdjustments(c.Request.Context())
	if err != nil {
		handleDBError(c, err, "Adjustments not found")
		return
	}

	items := make([]AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		items = append(items, toAdjustmentResponse(a))
	}
	sendList(c, items)
}

// GetAdjustment godoc
// @Summary Get adjustment by ID
// @Tags admin
// @Produce json
// @Param adjustment_id path string true "Adjustment ID"
// @Success 200 {object} AdjustmentResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/adjustments/{adjustment_id} [get]
func (h *AdjustmentHandler) GetAdjustment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("adjustment_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid adjustment ID format", err)
		return
	}

	adjustment, err := h.common.db.GetOrderTypeAdjustment(c.Request.Context(), id)
	if err != nil {
		handleDBError(c, err, "Adjustment not found")
		return
	}
	sendSuccess(c, http.StatusOK, toAdjustmentResponse(adjustment))
}

// CreateAdjustment godoc
// @Summary Create an order-type adjustment
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreateAdjustmentRequest true "Adjustment"
// @Success 201 {object} AdjustmentResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/adjustments [post]
func (h *AdjustmentHandler) CreateAdjustment(c *gin.Context) {
	var req CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	adjustment, err := h.common.db.CreateOrderTypeAdjustment(c.Request.Context(), db.CreateOrderTypeAdjustmentParams{
		Name:   req.Name,
		Kind:   req.Kind,
		Value:  req.Value,
		Active: req.Active,
	})
	if err != nil {
		handleDBError(c, err, "Adjustment not found")
		return
	}

	h.common.refreshPricing(c)
	sendSuccess(c, http.StatusCreated, toAdjustmentResponse(adjustment))
}

// UpdateAdjustment godoc
// @Summary Update an order-type adjustment
// @Tags admin
// @Accept json
// @Produce json
// @Param adjustment_id path string true "Adjustment ID"
// @Param request body UpdateAdjustmentRequest true "Fields to update"
// @Success 200 {object} AdjustmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/adjustments/{adjustment_id} [put]
func (h *AdjustmentHandler) UpdateAdjustment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("adjustment_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid adjustment ID format", err)
		return
	}

	var req UpdateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	adjustment, err := h.common.db.UpdateOrderTypeAdjustment(c.Request.Context(), db.UpdateOrderTypeAdjustmentParams{
		ID:     id,
		Name:   req.Name,
		Kind:   req.Kind,
		Value:  req.Value,
		Active: req.Active,
	})
	if err != nil {
		handleDBError(c, err, "Adjustment not found")
		return
	}

	h.common.refreshPricing(c)
	sendSuccess(c, http.StatusOK, toAdjustmentResponse(adjustment))
}

// DeleteAdjustment godoc
// @Summary Delete an order-type adjustment
// @Tags admin
// @Produce json
// @Param adjustment_id path string true "Adjustment ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/adjustments/{adjustment_id} [delete]
func (h *AdjustmentHandler) DeleteAdjustment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("adjustment_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid adjustment ID format", err)
		return
	}

	if err := h.common.db.DeleteOrderTypeAdjustment(c.Request.Context(), id); err != nil {
		handleDBError(c, err, "Adjustment not found")
		return
	}

	h.common.refreshPricing(c)
	sendSuccessMessage(c, http.StatusOK, "Adjustment deleted successfully")
}
