// Package http exposes the slotting API over gin.
package http

import (
	"github.com/guttosm/slotting-service/internal/middleware"
	"github.com/guttosm/slotting-service/internal/service"
)

const defaultMaxUploadBytes = 5 << 20

// Handler serves optimization, SKU import, catalog and run history routes.
type Handler struct {
	optimizer      service.Optimizer
	catalog        service.CatalogService
	runs           service.RunsService
	audit          *middleware.AsyncLogger
	maxUploadBytes int64
	maxSKUs        int
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRunsService enables the run history routes.
func WithRunsService(runs service.RunsService) HandlerOption {
	return func(h *Handler) {
		h.runs = runs
	}
}

// WithAuditLogger records optimizations, imports and catalog edits.
func WithAuditLogger(audit *middleware.AsyncLogger) HandlerOption {
	return func(h *Handler) {
		h.audit = audit
	}
}

// WithMaxUploadBytes caps SKU import uploads.
func WithMaxUploadBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxUploadBytes = n
		}
	}
}

// WithMaxSKUs is the per-request SKU limit reported back by the import route.
func WithMaxSKUs(n int) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxSKUs = n
		}
	}
}

// NewHandler creates a Handler.
func NewHandler(optimizer service.Optimizer, catalog service.CatalogService, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizer:      optimizer,
		catalog:        catalog,
		maxUploadBytes: defaultMaxUploadBytes,
		maxSKUs:        10,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
