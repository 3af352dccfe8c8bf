package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes mounted behind authentication when it is enabled.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PublicRouteGroup defines routes that never require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
