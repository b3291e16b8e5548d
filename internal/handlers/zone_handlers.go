package handlers

import (
	"net/http"

	"logistics-api/internal/db"
	"logistics-api/internal/helpers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ZoneHandler handles delivery zone configuration
type ZoneHandler struct {
	common *CommonServices
}

// NewZoneHandler creates a new ZoneHandler instance
func NewZoneHandler(common *CommonServices) *ZoneHandler {
	return &ZoneHandler{common: common}
}

// ZoneResponse represents the standardized API response for delivery zones
type ZoneResponse struct {
	ID            string  `json:"id"`
	Object        string  `json:"object"`
	Name          string  `json:"name"`
	MinDistanceKm float64 `json:"min_distance_km"`
	MaxDistanceKm float64 `json:"max_distance_km"`
	BasePrice     float64 `json:"base_price"`
	Active        bool    `json:"active"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

// CreateZoneRequest represents the request body for creating a delivery zone
type CreateZoneRequest struct {
	Name          string  `json:"name" binding:"required"`
	MinDistanceKm float64 `json:"min_distance_km"`
	MaxDistanceKm float64 `json:"max_distance_km" binding:"required"`
	BasePrice     float64 `json:"base_price" binding:"required"`
	Active        bool    `json:"active"`
}

// UpdateZoneRequest represents the request body for updating a delivery zone
type UpdateZoneRequest struct {
	Name          *string  `json:"name,omitempty"`
	MinDistanceKm *float64 `json:"min_distance_km,omitempty"`
	MaxDistanceKm *float64 `json:"max_distance_km,omitempty"`
	BasePrice     *float64 `json:"base_price,omitempty"`
	Active        *bool    `json:"active,omitempty"`
}

func toZoneResponse(z db.DeliveryZone) ZoneResponse {
	return ZoneResponse{
		ID:            z.ID.String(),
		Object:        "delivery_zone",
		Name:          z.Name,
		MinDistanceKm: z.MinDistanceKm,
		MaxDistanceKm: z.MaxDistanceKm,
		BasePrice:     z.BasePrice,
		Active:        z.Active,
		CreatedAt:     helpers.UnixOrZero(z.CreatedAt),
		UpdatedAt:     helpers.UnixOrZero(z.UpdatedAt),
	}
}

// ListZones godoc
// @Summary List delivery zones
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/zones [get]
func (h *ZoneHandler) ListZones(c *gin.Context) {
	zones, err := h.common.db.ListDeliveryZones(c.Request.Context())
	if err != nil {
		handleDBError(c, err, "Zones not found")
		return
	}

	items := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		items = append(items, toZoneResponse(z))
	}
	sendList(c, items)
}

// GetZone godoc
// @Summary Get delivery zone by ID
// @Tags admin
// @Produce json
// @Param zone_id path string true "Zone ID"
// @Success 200 {object} ZoneResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/zones/{zone_id} [get]
func (h *ZoneHandler) GetZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("zone_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid zone ID format", err)
		return
	}

	zone, err := h.common.db.GetDeliveryZone(c.Request.Context(), id)
	if err != nil {
		handleDBError(c, err, "Zone not found")
		return
	}
	sendSuccess(c, http.StatusOK, toZoneResponse(zone))
}

// CreateZone godoc
// @Summary Create a delivery zone
// @Description Zone bands should not overlap; lookup takes the first band matching min <= distance < max
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreateZoneRequest true "Zone"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/zones [post]
func (h *ZoneHandler) CreateZone(c *gin.Context) {
	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.MaxDistanceKm <= req.MinDistanceKm {
		sendError(c, http.StatusBadRequest, "Max distance must be greater than min distance", nil)
		return
	}

	zone, err := h.common.db.CreateDeliveryZone(c.Request.Context(), db.CreateDeliveryZoneParams{
		Name:          req.Name,
		MinDistanceKm: req.MinDistanceKm,
		MaxDistanceKm: req.MaxDistanceKm,
		BasePrice:     req.BasePrice,
		Active:        req.Active,
	})
	if err != nil {
		handleDBError(c, err, "Zone not found")
		return
	}

	h.common.refreshPricing(c)
	sendSuccess(c, http.StatusCreated, toZoneResponse(zone))
}

// UpdateZone godoc
// @Summary Update a delivery zone
// @Tags admin
// @Accept json
// @Produce json
// @Param zone_id path string true "Zone ID"
// @Param request body UpdateZoneRequest true "Fields to update"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/zones/{zone_id} [put]
func (h *ZoneHandler) UpdateZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("zone_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid zone ID format", err)
		return
	}

	var req UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	zone, err := h.common.db.UpdateDeliveryZone(c.Request.Context(), db.UpdateDeliveryZoneParams{
		ID:            id,
		Name:          req.Name,
		MinDistanceKm: req.MinDistanceKm,
		MaxDistanceKm: req.MaxDistanceKm,
		BasePrice:     req.BasePrice,
		Active:        req.Active,
	})
	if err != nil {
		handleDBError(c, err, "Zone not found")
		return
	}

	h.common.refreshPricing(c)
	sendSuccess(c, http.StatusOK, toZoneResponse(zone))
}

// DeleteZone godoc
// @Summary Delete a delivery zone
// @Tags admin
// @Produce json
// @Param zone_id path string true "Zone ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/zones/{zone_id} [delete]
func (h *ZoneHandler) DeleteZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("zone_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid zone ID format", err)
		return
	}

	if err := h.common.db.DeleteDeliveryZone(c.Request.Context(), id); err != nil {
		handleDBError(c, err, "Zone not found")
		return
	}

	h.common.refreshPricing(c)
	sendSuccessMessage(c, http.StatusOK, "Zone deleted successfully")
}
