package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

func TestAuditLog(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantError string
	}{
		{name: "success", wantLevel: "info"},
		{name: "failure", err: errors.New("pallet too tall"), wantLevel: "error", wantError: "pallet too tall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &memoryWriter{}
			sink := NewAsyncLogger(w, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, WriteTimeout: time.Second})

			r := gin.New()
			r.Use(RequestID())
			r.PUT("/api/v1/locations/:name", func(c *gin.Context) {
				AuditLog(sink, c, model.ActionUpdateLocation, "location updated", tt.err,
					map[string]any{"location": c.Param("name")})
				c.Status(http.StatusOK)
			})

			perform(r, http.MethodPut, "/api/v1/locations/Bin%20Tall", nil)
			sink.Stop()

			entries := w.snapshot()
			require.Len(t, entries, 1)
			e := entries[0]
			assert.Equal(t, model.ActionUpdateLocation, e.ActionType)
			assert.Equal(t, tt.wantLevel, e.Level)
			assert.Equal(t, tt.wantError, e.Error)
			assert.Equal(t, "Bin Tall", e.Fields["location"])
			assert.NotEmpty(t, e.RequestID)
		})
	}
}

func TestAuditLog_NilSink(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotPanics(t, func() {
		AuditLog(nil, c, model.ActionLogin, "login", nil, nil)
	})
}
