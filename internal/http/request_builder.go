package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/i18n"
	"github.com/guttosm/slotting-service/internal/middleware"
)

var (
	successResponsePool = sync.Pool{
		New: func() any { return &dto.SuccessResponse{} },
	}
	errorResponsePool = sync.Pool{
		New: func() any { return &dto.ErrorResponse{} },
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// ResponseBuilder writes the standard success and error envelopes. Envelopes are pooled;
// gin serializes synchronously so they can be returned right after writing.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// NoContent sends 204.
func (b *ResponseBuilder) NoContent() {
	b.c.Status(http.StatusNoContent)
}

// Error sends an error whose code follows from statusCode and whose message is the
// translation of messageKey. err, when set, is attached to the context for logging.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, dto.ErrCodeFromStatus(statusCode), messageKey, nil, err)
}

// ErrorWithDetails is Error with an explicit code and extra detail fields.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, code, messageKey string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = code
	resp.Message = i18n.Message(b.c, messageKey)
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// Fail maps a service error to its status, code and message.
func (b *ResponseBuilder) Fail(err error) {
	e := classify(err)
	var logged error
	if e.status >= http.StatusInternalServerError {
		logged = err
	}
	b.ErrorWithDetails(e.status, e.code, e.key, e.details, logged)
}

// BindError answers a request body that could not be decoded or validated. Oversized
// bodies get 413; everything else is a 400.
func (b *ResponseBuilder) BindError(err error) {
	e := classify(err)
	switch e.status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		b.ErrorWithDetails(e.status, e.code, e.key, e.details, nil)
	default:
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)
	}
}

// Validator is implemented by request types that check themselves after binding.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate binds the JSON body and runs Validate when T implements it.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}
