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

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no errors",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
		},
		{
			name:       "unwritten error becomes 500",
			handler:    func(c *gin.Context) { _ = c.Error(assert.AnError) },
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrCodeInternal,
		},
		{
			name: "written response is kept",
			handler: func(c *gin.Context) {
				_ = c.Error(assert.AnError)
				c.JSON(http.StatusConflict, dto.NewError(dto.ErrCodeConflict, "taken"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/", tt.handler)

			w := perform(r, http.MethodGet, "/", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Error)
			}
		})
	}
}
