package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireAdminKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin/ping", RequireAdminKey(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name           string
		configuredKey  string
		providedKey    string
		expectedStatus int
	}{
		{
			name:           "valid key",
			configuredKey:  "secret",
			providedKey:    "secret",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong key",
			configuredKey:  "secret",
			providedKey:    "guess",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing key header",
			configuredKey:  "secret",
			providedKey:    "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "admin key not configured",
			configuredKey:  "",
			providedKey:    "secret",
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_API_KEY", tt.configuredKey)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.providedKey != "" {
				req.Header.Set("X-Admin-Key", tt.providedKey)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
