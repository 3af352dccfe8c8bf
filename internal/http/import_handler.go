package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/i18n"
	"github.com/guttosm/slotting-service/internal/importer"
	"github.com/guttosm/slotting-service/internal/middleware"
)

// ImportResponse is the parsed content of an uploaded SKU file.
//
// @Description SKUs read from a CSV or XLSX file with row-level problems
type ImportResponse struct {
	Filename string      `json:"filename" example:"skus.csv"`
	Format   string      `json:"format" example:"csv"`
	SKUs     []model.SKU `json:"skus"`
	Errors   []string    `json:"errors,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
	// MaxSKUs is the number of SKUs one optimize request accepts.
	MaxSKUs int `json:"max_skus" example:"10"`
} // @name ImportResponse

// ImportSKUs handles POST /api/v1/skus/import.
//
// @Summary      Import SKUs from a file
// @Description  Parses a CSV or XLSX upload into SKUs. Columns are matched by header name with common aliases; files without a header are read as name, width, depth, height, weight. Rows that cannot be read are listed in errors and skipped.
// @Tags         SKUs
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV or XLSX file"
// @Success      200 {object} dto.SuccessResponse{data=ImportResponse} "Parsed SKUs"
// @Failure      400 {object} dto.ErrorResponse "Missing file or no readable rows"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - planner role required"
// @Failure      413 {object} dto.ErrorResponse "File too large"
// @Failure      415 {object} dto.ErrorResponse "Unsupported file type"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/skus/import [post]
func (h *Handler) ImportSKUs(c *gin.Context) {
	builder := NewResponseBuilder(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		if e := classify(err); e.status == http.StatusRequestEntityTooLarge {
			builder.Error(e.status, e.key, nil)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)
		return
	}
	if header.Size > h.maxUploadBytes {
		builder.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyPayloadTooLarge, nil)
		return
	}

	format, err := importer.FormatFromName(header.Filename)
	if err != nil {
		builder.ErrorWithDetails(http.StatusUnsupportedMediaType, dto.ErrCodeUnsupportedFormat, i18n.ErrKeyUnsupportedFormat,
			map[string]string{"filename": header.Filename}, nil)
		return
	}

	f, err := header.Open()
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	defer f.Close()

	result, err := importer.Import(f, format)
	if err != nil {
		middleware.AuditLog(h.audit, c, model.ActionImportSKUs, "sku import failed", err,
			map[string]any{"filename": header.Filename})
		builder.ErrorWithDetails(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyImportFailed,
			map[string]string{"reason": err.Error()}, nil)
		return
	}
	if len(result.SKUs) == 0 {
		details := map[string]string{}
		for i, msg := range result.Errors {
			details[fmt.Sprintf("row_error_%d", i+1)] = msg
		}
		builder.ErrorWithDetails(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyImportFailed, details, nil)
		return
	}

	warnings := result.Warnings
	if len(result.SKUs) > h.maxSKUs {
		warnings = append(warnings, fmt.Sprintf("%d skus read; an optimize request accepts at most %d", len(result.SKUs), h.maxSKUs))
	}

	middleware.AuditLog(h.audit, c, model.ActionImportSKUs, "skus imported", nil, map[string]any{
		"filename": header.Filename,
		"skus":     len(result.SKUs),
		"errors":   len(result.Errors),
	})
	builder.SuccessOK(ImportResponse{
		Filename: header.Filename,
		Format:   string(format),
		SKUs:     result.SKUs,
		Errors:   result.Errors,
		Warnings: warnings,
		MaxSKUs:  h.maxSKUs,
	})
}
