package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/middleware"
)

// CatalogReadOnlyHeader tells clients whether catalog writes are accepted.
const CatalogReadOnlyHeader = "X-Catalog-Read-Only"

func (h *Handler) catalogHeader(c *gin.Context) {
	c.Header(CatalogReadOnlyHeader, map[bool]string{true: "true", false: "false"}[h.catalog.ReadOnly()])
}

// ListLocations handles GET /api/v1/locations.
//
// @Summary      List storage locations
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse{items=[]model.Location}} "Locations sorted by name"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Catalog store unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/locations [get]
func (h *Handler) ListLocations(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locations, err := h.catalog.ListLocations(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	h.catalogHeader(c)
	builder.SuccessOK(dto.ListResponse{Items: locations, Total: int64(len(locations)), Limit: len(locations)})
}

// GetLocation handles GET /api/v1/locations/:name.
//
// @Summary      Get a storage location
// @Tags         Catalog
// @Produce      json
// @Param        name path string true "Location name"
// @Success      200 {object} dto.SuccessResponse{data=model.Location} "Location"
// @Failure      404 {object} dto.ErrorResponse "Location not found"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/locations/{name} [get]
func (h *Handler) GetLocation(c *gin.Context) {
	builder := NewResponseBuilder(c)
	loc, err := h.catalog.GetLocation(c.Request.Context(), c.Param("name"))
	if err != nil {
		builder.Fail(err)
		return
	}
	h.catalogHeader(c)
	builder.SuccessOK(loc)
}

// PutLocation handles PUT /api/v1/locations/:name.
//
// @Summary      Create or replace a storage location
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        name path string true "Location name"
// @Param        request body dto.LocationRequest true "Location geometry"
// @Success      200 {object} dto.SuccessResponse{data=model.Location} "Stored location"
// @Failure      400 {object} dto.ErrorResponse "Invalid geometry"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      409 {object} dto.ErrorResponse "Catalog is read-only"
// @Security     BearerAuth
// @Router       /api/v1/locations/{name} [put]
func (h *Handler) PutLocation(c *gin.Context) {
	builder := NewResponseBuilder(c)
	req, err := BuildRequest[dto.LocationRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	loc, err := h.catalog.UpsertLocation(c.Request.Context(), req.ToModel(c.Param("name")))
	middleware.AuditLog(h.audit, c, model.ActionUpdateLocation, "location upserted", err,
		map[string]any{"location": c.Param("name")})
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(loc)
}

// DeleteLocation handles DELETE /api/v1/locations/:name.
//
// @Summary      Delete a storage location
// @Tags         Catalog
// @Param        name path string true "Location name"
// @Success      204 "Deleted"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      404 {object} dto.ErrorResponse "Location not found"
// @Failure      409 {object} dto.ErrorResponse "Catalog is read-only"
// @Security     BearerAuth
// @Router       /api/v1/locations/{name} [delete]
func (h *Handler) DeleteLocation(c *gin.Context) {
	err := h.catalog.DeleteLocation(c.Request.Context(), c.Param("name"))
	middleware.AuditLog(h.audit, c, model.ActionDeleteLocation, "location deleted", err,
		map[string]any{"location": c.Param("name")})
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).NoContent()
}

// ListPallets handles GET /api/v1/pallets.
//
// @Summary      List pallet types
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse{items=[]model.Pallet}} "Pallets sorted by name"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/pallets [get]
func (h *Handler) ListPallets(c *gin.Context) {
	builder := NewResponseBuilder(c)
	pallets, err := h.catalog.ListPallets(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	h.catalogHeader(c)
	builder.SuccessOK(dto.ListResponse{Items: pallets, Total: int64(len(pallets)), Limit: len(pallets)})
}

// GetPallet handles GET /api/v1/pallets/:name.
//
// @Summary      Get a pallet type
// @Tags         Catalog
// @Produce      json
// @Param        name path string true "Pallet name"
// @Success      200 {object} dto.SuccessResponse{data=model.Pallet} "Pallet"
// @Failure      404 {object} dto.ErrorResponse "Pallet not found"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/pallets/{name} [get]
func (h *Handler) GetPallet(c *gin.Context) {
	builder := NewResponseBuilder(c)
	p, err := h.catalog.GetPallet(c.Request.Context(), c.Param("name"))
	if err != nil {
		builder.Fail(err)
		return
	}
	h.catalogHeader(c)
	builder.SuccessOK(p)
}

// PutPallet handles PUT /api/v1/pallets/:name.
//
// @Summary      Create or replace a pallet type
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        name path string true "Pallet name"
// @Param        request body dto.PalletRequest true "Pallet geometry"
// @Success      200 {object} dto.SuccessResponse{data=model.Pallet} "Stored pallet"
// @Failure      400 {object} dto.ErrorResponse "Invalid geometry"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      409 {object} dto.ErrorResponse "Catalog is read-only"
// @Security     BearerAuth
// @Router       /api/v1/pallets/{name} [put]
func (h *Handler) PutPallet(c *gin.Context) {
	builder := NewResponseBuilder(c)
	req, err := BuildRequest[dto.PalletRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	p, err := h.catalog.UpsertPallet(c.Request.Context(), req.ToModel(c.Param("name")))
	middleware.AuditLog(h.audit, c, model.ActionUpdatePallet, "pallet upserted", err,
		map[string]any{"pallet": c.Param("name")})
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(p)
}

// DeletePallet handles DELETE /api/v1/pallets/:name.
//
// @Summary      Delete a pallet type
// @Tags         Catalog
// @Param        name path string true "Pallet name"
// @Success      204 "Deleted"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      404 {object} dto.ErrorResponse "Pallet not found"
// @Failure      409 {object} dto.ErrorResponse "Catalog is read-only"
// @Security     BearerAuth
// @Router       /api/v1/pallets/{name} [delete]
func (h *Handler) DeletePallet(c *gin.Context) {
	err := h.catalog.DeletePallet(c.Request.Context(), c.Param("name"))
	middleware.AuditLog(h.audit, c, model.ActionDeletePallet, "pallet deleted", err,
		map[string]any{"pallet": c.Param("name")})
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).NoContent()
}
