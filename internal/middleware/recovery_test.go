package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/internal/domain/dto"
)

func TestRecovery(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   bool
	}{
		{
			name:       "no panic",
			handler:    func(c *gin.Context) { c.Status(http.StatusOK) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "panic with string",
			handler:    func(c *gin.Context) { panic("boom") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   true,
		},
		{
			name:       "panic with error",
			handler:    func(c *gin.Context) { panic(assert.AnError) },
			wantStatus: http.StatusInternalServerError,
			wantBody:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestID(), Recovery())
			r.GET("/", tt.handler)

			w := perform(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "req-42"})

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInternal, resp.Error)
				assert.Equal(t, "req-42", resp.RequestID)
			}
		})
	}
}
