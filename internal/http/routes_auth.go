package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/middleware"
	"github.com/guttosm/slotting-service/internal/service"
)

// AuthRoutes handles authentication and operator administration routes.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance. audit may be nil.
func NewAuthRoutes(authService service.AuthService, audit *middleware.AsyncLogger) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(authService, audit)}
}

// RegisterPublicRoutes registers login, registration and token refresh.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	auth := rg.Group("/auth", cfg.bodyLimit())
	{
		auth.POST("/login", r.handler.Login)
		auth.POST("/register", r.handler.Register)
		auth.POST("/refresh", r.handler.RefreshToken)
	}
}

// RegisterRoutes registers routes for authenticated callers.
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/auth/me", cfg.requireRole(model.RoleViewer), r.handler.Me)

	users := rg.Group("/users", cfg.requireRole(model.RoleAdmin))
	{
		users.PUT("/:id/roles", cfg.bodyLimit(), r.handler.UpdateRoles)
		users.DELETE("/:id", r.handler.DeactivateUser)
	}
}

var (
	_ PublicRouteGroup = (*AuthRoutes)(nil)
	_ RouteGroup       = (*AuthRoutes)(nil)
)
