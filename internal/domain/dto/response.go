package dto

import (
	"net/http"
	"time"
)

// Error codes returned in ErrorResponse.Error.
const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeInternal           = "internal_error"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeForbidden          = "forbidden"
	ErrCodeNotFound           = "not_found"
	ErrCodeRateLimit          = "rate_limit_exceeded"
	ErrCodeConflict           = "conflict"
	ErrCodeTimeout            = "timeout"
	ErrCodeUnavailable        = "service_unavailable"
	ErrCodePayloadTooLarge    = "payload_too_large"
	ErrCodeUnsupportedFormat  = "unsupported_format"
	ErrCodeConfigurationError = "configuration_error"
	ErrCodeOracleFailure      = "oracle_failure"
)

// SuccessResponse wraps successful API responses with metadata.
//
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      any       `json:"data" swaggertype:"object"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ListResponse is the data of paginated list endpoints.
//
// @Description Page of items with the total count
type ListResponse struct {
	Items any   `json:"items" swaggertype:"array,object"`
	Total int64 `json:"total" example:"42"`
	Limit int   `json:"limit" example:"20"`
	Skip  int   `json:"skip" example:"0"`
} // @name ListResponse

// ErrorResponse represents a standardized error response for the API.
//
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"configuration_error"`
	Message   string            `json:"message,omitempty" example:"pallet Standard is taller than location Bin Tall"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail adds one entry to Details.
func (e ErrorResponse) WithDetail(key, value string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the default error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusRequestEntityTooLarge:
		return ErrCodePayloadTooLarge
	case http.StatusUnsupportedMediaType:
		return ErrCodeUnsupportedFormat
	case http.StatusUnprocessableEntity:
		return ErrCodeConfigurationError
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
