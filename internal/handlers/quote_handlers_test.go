package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics-api/internal/client/geocoding"
	"logistics-api/internal/db"
	"logistics-api/internal/helpers"
	"logistics-api/internal/logger"
	"logistics-api/internal/mocks"
	"logistics-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

type stubGeocoder struct {
	locations map[string]geocoding.Location
}

func (s *stubGeocoder) Geocode(_ context.Context, address string) (*geocoding.Location, error) {
	loc, ok := s.locations[address]
	if !ok {
		return nil, geocoding.ErrAddressNotFound
	}
	return &loc, nil
}

// newQuoteTestServices builds a CommonServices with an initialized pricing
// snapshot and a geocoder that resolves two addresses 4.2 km apart.
func newQuoteTestServices(t *testing.T) *CommonServices {
	t.Helper()

	zones := []db.DeliveryZone{
		{ID: uuid.New(), Name: "Inner", MinDistanceKm: 0, MaxDistanceKm: 3, BasePrice: 500, Active: true},
		{ID: uuid.New(), Name: "City", MinDistanceKm: 3, MaxDistanceKm: 10, BasePrice: 1000, Active: true},
		{ID: uuid.New(), Name: "Outer", MinDistanceKm: 10, MaxDistanceKm: 25, BasePrice: 2000, Active: true},
	}
	adjustments := []db.OrderTypeAdjustment{
		{ID: uuid.New(), Name: "Express Delivery", Kind: "flat", Value: 300, Active: true},
	}
	promotions := []db.Promotion{
		{
			ID:            uuid.New(),
			Code:          "SAVE10",
			Name:          "Save 10%",
			DiscountKind:  "percentage",
			DiscountValue: 10,
			MinOrderValue: 2000,
			Active:        true,
			StartDate:     helpers.TimestamptzFromTime(time.Now().Add(-time.Hour)),
		},
	}

	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().ListActiveDeliveryZones(gomock.Any()).Return(zones, nil)
	mockQuerier.EXPECT().ListActiveOrderTypeAdjustments(gomock.Any()).Return(adjustments, nil)
	mockQuerier.EXPECT().ListPromotions(gomock.Any()).Return(promotions, nil)

	pricing := services.NewPricingService(mockQuerier, nil)
	require.NoError(t, pricing.Initialize(context.Background()))

	geocoder := &stubGeocoder{locations: map[string]geocoding.Location{
		"123 Main St": {
			Coordinates: geocoding.Coordinates{Latitude: 6.5244, Longitude: 3.3792},
			DisplayName: "123 Main St, Lagos, Nigeria",
		},
		"456 Oak Ave": {
			Coordinates: geocoding.Coordinates{Latitude: 6.5622, Longitude: 3.3792},
			DisplayName: "456 Oak Ave, Lagos, Nigeria",
		},
		"Far Outpost": {
			Coordinates: geocoding.Coordinates{Latitude: 10.0, Longitude: 3.3792},
			DisplayName: "Far Outpost",
		},
	}}

	return NewCommonServices(mockQuerier, pricing, services.NewDistanceService(geocoder))
}

func postJSON(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var requestBody []byte
	if str, ok := body.(string); ok {
		requestBody = []byte(str)
	} else {
		var err error
		requestBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	c.Request = httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBuffer(requestBody))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewQuoteHandler(newQuoteTestServices(t))

	c, w := postJSON(t, CreateQuoteRequest{
		PickupAddress:   "123 Main St",
		DeliveryAddress: "456 Oak Ave",
	})
	handler.CreateQuote(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "quote", resp.Object)
	assert.Equal(t, "123 Main St, Lagos, Nigeria", resp.PickupAddress)
	assert.Equal(t, "456 Oak Ave, Lagos, Nigeria", resp.DeliveryAddress)
	assert.Equal(t, 4.2, resp.Breakdown.DistanceKm)
	assert.Equal(t, "City", resp.Breakdown.ZoneName)
	assert.Equal(t, 1000.0, resp.Breakdown.BasePrice)
	assert.Empty(t, resp.Breakdown.Adjustments)
	assert.Equal(t, 1000.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 0.0, resp.Breakdown.Discount)
	assert.Equal(t, 1000.0, resp.Breakdown.FinalPrice)
}

func TestQuoteHandler_CreateQuote_WithAdjustmentAndPromo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewQuoteHandler(newQuoteTestServices(t))

	c, w := postJSON(t, CreateQuoteRequest{
		PickupAddress:   "123 Main St",
		DeliveryAddress: "456 Oak Ave",
		Adjustments:     []string{"Express Delivery"},
		OrderValue:      2500,
		PromoCode:       "save10",
	})
	handler.CreateQuote(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Breakdown.Adjustments, 1)
	assert.Equal(t, "Express Delivery", resp.Breakdown.Adjustments[0].Name)
	assert.Equal(t, 300.0, resp.Breakdown.Adjustments[0].Amount)
	assert.Equal(t, 1300.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 130.0, resp.Breakdown.Discount)
	assert.Equal(t, "SAVE10", resp.Breakdown.PromoApplied)
	assert.Equal(t, 1170.0, resp.Breakdown.FinalPrice)
}

func TestQuoteHandler_CreateQuote_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing pickup address",
			requestBody:    CreateQuoteRequest{DeliveryAddress: "456 Oak Ave"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name:           "missing delivery address",
			requestBody:    CreateQuoteRequest{PickupAddress: "123 Main St"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name:           "invalid JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "negative order value",
			requestBody: CreateQuoteRequest{
				PickupAddress:   "123 Main St",
				DeliveryAddress: "456 Oak Ave",
				OrderValue:      -50,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Order value cannot be negative",
		},
		{
			name: "invalid customer ID",
			requestBody: CreateQuoteRequest{
				PickupAddress:   "123 Main St",
				DeliveryAddress: "456 Oak Ave",
				CustomerID:      "not-a-uuid",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid customer ID format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validation fails before any service is reached
			handler := NewQuoteHandler(&CommonServices{})

			c, w := postJSON(t, tt.requestBody)
			handler.CreateQuote(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}
}

func TestQuoteHandler_CreateQuote_UnknownAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewQuoteHandler(newQuoteTestServices(t))

	c, w := postJSON(t, CreateQuoteRequest{
		PickupAddress:   "123 Main St",
		DeliveryAddress: "no such place",
	})
	handler.CreateQuote(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Unable to find addresses")
}

func TestQuoteHandler_CreateQuote_NoZoneCoversDistance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewQuoteHandler(newQuoteTestServices(t))

	c, w := postJSON(t, CreateQuoteRequest{
		PickupAddress:   "123 Main St",
		DeliveryAddress: "Far Outpost",
	})
	handler.CreateQuote(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "No delivery zone covers this distance")
}

func TestQuoteHandler_EstimateDistance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewQuoteHandler(newQuoteTestServices(t))

	c, w := postJSON(t, EstimateDistanceRequest{
		PickupAddress:   "123 Main St",
		DeliveryAddress: "456 Oak Ave",
	})
	handler.EstimateDistance(c)

	require.Equal(t, http.StatusOK, w.Code)

	var estimate services.DistanceEstimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &estimate))
	assert.Equal(t, 4.2, estimate.DistanceKm)
	assert.Equal(t, "123 Main St, Lagos, Nigeria", estimate.Pickup.DisplayName)
}

func TestQuoteHandler_EstimateDistance_UnknownAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewQuoteHandler(newQuoteTestServices(t))

	c, w := postJSON(t, EstimateDistanceRequest{
		PickupAddress:   "no such place",
		DeliveryAddress: "456 Oak Ave",
	})
	handler.EstimateDistance(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
