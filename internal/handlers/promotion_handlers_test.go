package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics-api/internal/mocks"
	"logistics-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPromotionHandler_ValidatePromotion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		requestBody   ValidatePromotionRequest
		expectValid   bool
		expectedPromo string
	}{
		{
			name:          "eligible code",
			requestBody:   ValidatePromotionRequest{Code: "SAVE10", OrderValue: 2500},
			expectValid:   true,
			expectedPromo: "SAVE10",
		},
		{
			name:          "code is matched case-insensitively",
			requestBody:   ValidatePromotionRequest{Code: "save10", OrderValue: 2500},
			expectValid:   true,
			expectedPromo: "SAVE10",
		},
		{
			name:        "unknown code",
			requestBody: ValidatePromotionRequest{Code: "NOPE", OrderValue: 2500},
			expectValid: false,
		},
		{
			name:        "order below minimum",
			requestBody: ValidatePromotionRequest{Code: "SAVE10", OrderValue: 100},
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPromotionHandler(newQuoteTestServices(t))

			c, w := postJSON(t, tt.requestBody)
			handler.ValidatePromotion(c)

			require.Equal(t, http.StatusOK, w.Code)

			var resp ValidatePromotionResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectValid, resp.Valid)
			if tt.expectValid {
				require.NotNil(t, resp.Promotion)
				assert.Equal(t, tt.expectedPromo, resp.Promotion.Code)
			} else {
				assert.Nil(t, resp.Promotion)
			}
		})
	}

	t.Run("invalid customer ID", func(t *testing.T) {
		handler := NewPromotionHandler(&CommonServices{})

		c, w := postJSON(t, ValidatePromotionRequest{Code: "SAVE10", CustomerID: "not-a-uuid"})
		handler.ValidatePromotion(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPromotionHandler_RedeemPromotion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	incremented := make(chan string, 1)
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		IncrementPromotionUsage(gomock.Any(), "SAVE10").
		DoAndReturn(func(_ context.Context, code string) error {
			incremented <- code
			return nil
		})

	pricing := services.NewPricingService(mockQuerier, nil)
	handler := NewPromotionHandler(NewCommonServices(mockQuerier, pricing, nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost,
		"/promotions/SAVE10/redeem?customer_id="+uuid.New().String(), nil)
	c.Params = gin.Params{{Key: "code", Value: "SAVE10"}}

	handler.RedeemPromotion(c)

	// The response does not wait for the increment
	assert.Equal(t, http.StatusAccepted, w.Code)

	select {
	case code := <-incremented:
		assert.Equal(t, "SAVE10", code)
	case <-time.After(2 * time.Second):
		t.Fatal("usage increment was never recorded")
	}
}
