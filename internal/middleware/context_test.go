package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/slotting-service/internal/domain/dto"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{name: "generates id", header: "", wantReuse: false},
		{name: "reuses client id", header: "client-id-1", wantReuse: true},
		{name: "replaces oversized id", header: strings.Repeat("x", 200), wantReuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			r := gin.New()
			r.Use(RequestID())
			r.GET("/", func(c *gin.Context) {
				seen = GetRequestID(c)
				c.Status(http.StatusNoContent)
			})

			headers := map[string]string{}
			if tt.header != "" {
				headers[RequestIDHeader] = tt.header
			}
			w := perform(r, http.MethodGet, "/", headers)

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
			if tt.wantReuse {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
				assert.Len(t, seen, 36)
			}
		})
	}
}

func TestGetClaimsAndUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetClaims(c)
	assert.False(t, ok)
	assert.Empty(t, GetUserID(c))

	id := primitive.NewObjectID()
	setClaims(c, &dto.Claims{UserID: id, Email: "a@b.c", Roles: []string{"viewer"}})

	claims, ok := GetClaims(c)
	assert.True(t, ok)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, id.Hex(), GetUserID(c))
	assert.Equal(t, "a@b.c", c.GetString(UserEmailKey))
}

func TestGetUserID_APIKeyCaller(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	setClaims(c, &dto.Claims{Name: "api-key", Roles: []string{APIKeyRole}})

	assert.Empty(t, GetUserID(c))
}
