package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      []string
		anonymous  bool
		required   string
		wantStatus int
	}{
		{name: "anonymous", anonymous: true, required: model.RoleViewer, wantStatus: http.StatusUnauthorized},
		{name: "viewer reads", roles: []string{model.RoleViewer}, required: model.RoleViewer, wantStatus: http.StatusOK},
		{name: "viewer cannot plan", roles: []string{model.RoleViewer}, required: model.RolePlanner, wantStatus: http.StatusForbidden},
		{name: "planner plans", roles: []string{model.RolePlanner}, required: model.RolePlanner, wantStatus: http.StatusOK},
		{name: "planner cannot edit catalog", roles: []string{model.RolePlanner}, required: model.RoleAdmin, wantStatus: http.StatusForbidden},
		{name: "admin does everything", roles: []string{model.RoleAdmin}, required: model.RolePlanner, wantStatus: http.StatusOK},
		{name: "unknown role", roles: []string{"guest"}, required: model.RoleViewer, wantStatus: http.StatusForbidden},
		{name: "any granted role suffices", roles: []string{"guest", model.RoleAdmin}, required: model.RoleAdmin, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			if !tt.anonymous {
				r.Use(func(c *gin.Context) {
					setClaims(c, &dto.Claims{Roles: tt.roles})
					c.Next()
				})
			}
			r.Use(RequireRole(tt.required))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := perform(r, http.MethodGet, "/", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
