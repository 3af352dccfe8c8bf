package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/i18n"
	"github.com/guttosm/slotting-service/internal/service"
)

type runsQuery struct {
	Location string `form:"location"`
	UserID   string `form:"user_id"`
	Limit    int    `form:"limit" binding:"gte=0"`
	Skip     int    `form:"skip" binding:"gte=0"`
}

// ListRuns handles GET /api/v1/runs.
//
// @Summary      List optimization runs
// @Description  Returns recorded optimizations, newest first. Requires MongoDB.
// @Tags         Runs
// @Produce      json
// @Param        location query string false "Filter by location name"
// @Param        user_id query string false "Filter by user id"
// @Param        limit query int false "Page size (default 20, max 200)"
// @Param        skip query int false "Number of runs to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse{items=[]model.OptimizationRun}} "Runs"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      404 {object} dto.ErrorResponse "History not enabled"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/runs [get]
func (h *Handler) ListRuns(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.runs == nil {
		builder.Fail(service.ErrHistoryDisabled)
		return
	}

	var q runsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	opts := model.RunQueryOptions{LocationName: q.Location, UserID: q.UserID, Limit: q.Limit, Skip: q.Skip}
	runs, total, err := h.runs.List(c.Request.Context(), opts)
	if err != nil {
		builder.Fail(err)
		return
	}
	if runs == nil {
		runs = []model.OptimizationRun{}
	}
	builder.SuccessOK(dto.ListResponse{Items: runs, Total: total, Limit: service.RunsPageLimit(q.Limit), Skip: q.Skip})
}

// GetRun handles GET /api/v1/runs/:id.
//
// @Summary      Get an optimization run
// @Tags         Runs
// @Produce      json
// @Param        id path string true "Run id"
// @Success      200 {object} dto.SuccessResponse{data=model.OptimizationRun} "Run"
// @Failure      404 {object} dto.ErrorResponse "Run not found or history not enabled"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/runs/{id} [get]
func (h *Handler) GetRun(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.runs == nil {
		builder.Fail(service.ErrHistoryDisabled)
		return
	}

	run, err := h.runs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(run)
}
