package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/export"
	"github.com/guttosm/slotting-service/internal/i18n"
	"github.com/guttosm/slotting-service/internal/middleware"
	"github.com/guttosm/slotting-service/internal/service"
)

// Report formats served by the optimize route.
const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"

	// RunIDHeader carries the id of the recorded optimization run.
	RunIDHeader = "X-Run-ID"
	// CacheHeader is HIT when the report came from the result cache.
	CacheHeader = "X-Cache"

	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Optimize handles POST /api/v1/optimize.
//
// @Summary      Optimize SKU storage
// @Description  Finds, for every SKU, the orientation that stores the most units on the chosen pallet inside the chosen storage location and reports the layer plan. Up to the configured number of SKUs are evaluated independently; an SKU that does not fit is reported as infeasible. Supports idempotency via Idempotency-Key header.
// @Tags         Optimization
// @Accept       json
// @Produce      json
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format query string false "Report format" Enums(json, pdf, xlsx) default(json)
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.OptimizeRequest true "Location, pallet and SKUs"
// @Success      200 {object} dto.SuccessResponse{data=model.OptimizationReport} "Optimization report"
// @Failure      400 {object} dto.ErrorResponse "Invalid request or SKU"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - planner role required"
// @Failure      404 {object} dto.ErrorResponse "Location or pallet not found"
// @Failure      422 {object} dto.ErrorResponse "Pallet cannot be placed in the location"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      500 {object} dto.ErrorResponse "Placement computation failed"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	format := strings.ToLower(c.DefaultQuery("format", FormatJSON))
	if format != FormatJSON && format != FormatPDF && format != FormatXLSX {
		builder.ErrorWithDetails(http.StatusBadRequest, dto.ErrCodeUnsupportedFormat, i18n.ErrKeyUnsupportedFormat,
			map[string]string{"format": format}, nil)
		return
	}

	req, err := BuildRequest[dto.OptimizeRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	caller := service.Caller{
		RequestID: middleware.GetRequestID(c),
		UserID:    middleware.GetUserID(c),
	}
	result, err := h.optimizer.Optimize(c.Request.Context(), *req, caller)
	if err != nil {
		middleware.AuditLog(h.audit, c, model.ActionOptimize, "optimization failed", err, map[string]any{
			"location": req.Location,
			"pallet":   req.Pallet,
			"skus":     len(req.SKUs),
		})
		builder.Fail(err)
		return
	}

	report := result.Report
	middleware.AuditLog(h.audit, c, model.ActionOptimize, "optimization completed", nil, map[string]any{
		"run_id":   report.RunID,
		"location": report.Location.Name,
		"pallet":   report.Pallet.Name,
		"skus":     len(report.SKUs),
		"packed":   report.PackedCount(),
		"cached":   result.Cached,
	})

	c.Header(RunIDHeader, report.RunID)
	c.Header(CacheHeader, map[bool]string{true: "HIT", false: "MISS"}[result.Cached])

	switch format {
	case FormatPDF:
		h.writeExport(c, report, FormatPDF, contentTypePDF, export.WritePDF)
	case FormatXLSX:
		h.writeExport(c, report, FormatXLSX, contentTypeXLSX, export.WriteXLSX)
	default:
		builder.SuccessOK(report)
	}
}

func (h *Handler) writeExport(c *gin.Context, report *model.OptimizationReport, ext, contentType string,
	write func(io.Writer, model.OptimizationReport) error) {
	var buf bytes.Buffer
	if err := write(&buf, *report); err != nil {
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="slotting-%s.%s"`, report.RunID, ext))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
