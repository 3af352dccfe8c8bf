package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// SlottingRoutes registers optimization, import, catalog and run history routes.
type SlottingRoutes struct {
	handler *Handler
}

// NewSlottingRoutes creates a new SlottingRoutes instance.
func NewSlottingRoutes(handler *Handler) *SlottingRoutes {
	return &SlottingRoutes{handler: handler}
}

// RegisterRoutes registers the slotting routes with their role guards.
func (r *SlottingRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	h := r.handler
	viewer := cfg.requireRole(model.RoleViewer)
	planner := cfg.requireRole(model.RolePlanner)
	admin := cfg.requireRole(model.RoleAdmin)

	rg.POST("/optimize", planner, cfg.bodyLimit(), h.Optimize)
	rg.POST("/skus/import", planner, h.ImportSKUs)

	locations := rg.Group("/locations")
	{
		locations.GET("", viewer, h.ListLocations)
		locations.GET("/:name", viewer, h.GetLocation)
		locations.PUT("/:name", admin, cfg.bodyLimit(), h.PutLocation)
		locations.DELETE("/:name", admin, h.DeleteLocation)
	}

	pallets := rg.Group("/pallets")
	{
		pallets.GET("", viewer, h.ListPallets)
		pallets.GET("/:name", viewer, h.GetPallet)
		pallets.PUT("/:name", admin, cfg.bodyLimit(), h.PutPallet)
		pallets.DELETE("/:name", admin, h.DeletePallet)
	}

	runs := rg.Group("/runs", viewer)
	{
		runs.GET("", h.ListRuns)
		runs.GET("/:id", h.GetRun)
	}
}

var _ RouteGroup = (*SlottingRoutes)(nil)
