package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics-api/internal/db"
	"logistics-api/internal/mocks"
	"logistics-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestZoneHandler_CreateZone_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "missing name",
			requestBody: CreateZoneRequest{
				MaxDistanceKm: 10,
				BasePrice:     1000,
			},
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
			name: "max not greater than min",
			requestBody: CreateZoneRequest{
				Name:          "City",
				MinDistanceKm: 10,
				MaxDistanceKm: 10,
				BasePrice:     1000,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Max distance must be greater than min distance",
		},
		{
			name: "inverted band",
			requestBody: CreateZoneRequest{
				Name:          "City",
				MinDistanceKm: 10,
				MaxDistanceKm: 3,
				BasePrice:     1000,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Max distance must be greater than min distance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewZoneHandler(&CommonServices{})

			c, w := postJSON(t, tt.requestBody)
			handler.CreateZone(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}
}

func TestZoneHandler_CreateZone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	created := db.DeliveryZone{
		ID:            uuid.New(),
		Name:          "City",
		MinDistanceKm: 3,
		MaxDistanceKm: 10,
		BasePrice:     1000,
		Active:        true,
	}

	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		CreateDeliveryZone(gomock.Any(), db.CreateDeliveryZoneParams{
			Name:          "City",
			MinDistanceKm: 3,
			MaxDistanceKm: 10,
			BasePrice:     1000,
			Active:        true,
		}).
		Return(created, nil)

	// The handler reloads the pricing snapshot after the write
	mockQuerier.EXPECT().ListActiveDeliveryZones(gomock.Any()).Return([]db.DeliveryZone{created}, nil)
	mockQuerier.EXPECT().ListActiveOrderTypeAdjustments(gomock.Any()).Return(nil, nil)
	mockQuerier.EXPECT().ListPromotions(gomock.Any()).Return(nil, nil)

	pricing := services.NewPricingService(mockQuerier, nil)
	handler := NewZoneHandler(NewCommonServices(mockQuerier, pricing, nil))

	c, w := postJSON(t, CreateZoneRequest{
		Name:          "City",
		MinDistanceKm: 3,
		MaxDistanceKm: 10,
		BasePrice:     1000,
		Active:        true,
	})
	handler.CreateZone(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "delivery_zone", resp.Object)
	assert.Equal(t, created.ID.String(), resp.ID)
	assert.Equal(t, "City", resp.Name)
	assert.Equal(t, 1000.0, resp.BasePrice)

	// The reload made the new zone immediately priceable
	assert.NotNil(t, pricing.FindZone(5))
}

func TestZoneHandler_GetZone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid zone ID", func(t *testing.T) {
		handler := NewZoneHandler(&CommonServices{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/zones/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "zone_id", Value: "not-a-uuid"}}

		handler.GetZone(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zone not found", func(t *testing.T) {
		id := uuid.New()
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetDeliveryZone(gomock.Any(), id).Return(db.DeliveryZone{}, pgx.ErrNoRows)

		handler := NewZoneHandler(NewCommonServices(mockQuerier, nil, nil))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/zones/"+id.String(), nil)
		c.Params = gin.Params{{Key: "zone_id", Value: id.String()}}

		handler.GetZone(c)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["error"], "Zone not found")
	})
}

func TestZoneHandler_ListZones(t *testing.T) {
	gin.SetMode(gin.TestMode)

	zones := []db.DeliveryZone{
		{ID: uuid.New(), Name: "Inner", MaxDistanceKm: 3, BasePrice: 500, Active: true},
		{ID: uuid.New(), Name: "City", MinDistanceKm: 3, MaxDistanceKm: 10, BasePrice: 1000, Active: true},
	}

	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().ListDeliveryZones(gomock.Any()).Return(zones, nil)

	handler := NewZoneHandler(NewCommonServices(mockQuerier, nil, nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/zones", nil)

	handler.ListZones(c)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Object string         `json:"object"`
		Data   []ZoneResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "list", response.Object)
	require.Len(t, response.Data, 2)
	assert.Equal(t, "Inner", response.Data[0].Name)
	assert.Equal(t, "City", response.Data[1].Name)
}

func TestZoneHandler_DeleteZone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	id := uuid.New()
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().DeleteDeliveryZone(gomock.Any(), id).Return(nil)
	mockQuerier.EXPECT().ListActiveDeliveryZones(gomock.Any()).Return(nil, nil)
	mockQuerier.EXPECT().ListActiveOrderTypeAdjustments(gomock.Any()).Return(nil, nil)
	mockQuerier.EXPECT().ListPromotions(gomock.Any()).Return(nil, nil)

	pricing := services.NewPricingService(mockQuerier, nil)
	handler := NewZoneHandler(NewCommonServices(mockQuerier, pricing, nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/admin/zones/"+id.String(), nil)
	c.Params = gin.Params{{Key: "zone_id", Value: id.String()}}

	handler.DeleteZone(c)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Zone deleted successfully", response["message"])
}
