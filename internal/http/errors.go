package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/guttosm/slotting-service/internal/circuitbreaker"
	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/i18n"
	"github.com/guttosm/slotting-service/internal/importer"
	"github.com/guttosm/slotting-service/internal/packing"
	"github.com/guttosm/slotting-service/internal/service"
)

type apiError struct {
	status  int
	code    string
	key     string
	details map[string]string
}

func newAPIError(status int, key string) apiError {
	return apiError{status: status, code: dto.ErrCodeFromStatus(status), key: key}
}

// classify maps domain and service errors onto the HTTP error contract.
func classify(err error) apiError {
	var (
		vErr      *dto.ValidationError
		cfgErr    *packing.ConfigurationError
		oracleErr *packing.OracleFailure
		tooLarge  *http.MaxBytesError
	)

	switch {
	case errors.Is(err, service.ErrInvalidSKU):
		e := newAPIError(http.StatusBadRequest, i18n.ErrKeyInvalidSKU)
		if errors.As(err, &vErr) {
			e.details = map[string]string{"field": vErr.Field, "reason": vErr.Message}
		}
		return e
	case errors.As(err, &vErr):
		e := newAPIError(http.StatusBadRequest, i18n.ErrKeyInvalidRequest)
		e.details = map[string]string{"field": vErr.Field, "reason": vErr.Message}
		return e
	case errors.Is(err, service.ErrInvalidCatalogEntry):
		e := newAPIError(http.StatusBadRequest, i18n.ErrKeyInvalidRequest)
		e.details = map[string]string{"reason": err.Error()}
		return e
	case errors.As(err, &cfgErr):
		e := newAPIError(http.StatusUnprocessableEntity, i18n.ErrKeyConfiguration)
		e.code = dto.ErrCodeConfigurationError
		e.details = map[string]string{
			"location": cfgErr.Location,
			"pallet":   cfgErr.Pallet,
			"reason":   cfgErr.Reason,
		}
		return e
	case errors.As(err, &oracleErr):
		e := newAPIError(http.StatusInternalServerError, i18n.ErrKeyOracleFailure)
		e.code = dto.ErrCodeOracleFailure
		e.details = map[string]string{
			"dimensions": oracleErr.Dims.String(),
			"quantity":   strconv.Itoa(oracleErr.Quantity),
		}
		return e
	case errors.Is(err, service.ErrLocationNotFound):
		return newAPIError(http.StatusNotFound, i18n.ErrKeyLocationNotFound)
	case errors.Is(err, service.ErrPalletNotFound):
		return newAPIError(http.StatusNotFound, i18n.ErrKeyPalletNotFound)
	case errors.Is(err, service.ErrRunNotFound):
		return newAPIError(http.StatusNotFound, i18n.ErrKeyRunNotFound)
	case errors.Is(err, service.ErrHistoryDisabled):
		return newAPIError(http.StatusNotFound, i18n.ErrKeyHistoryDisabled)
	case errors.Is(err, service.ErrUserNotFound):
		return newAPIError(http.StatusNotFound, i18n.ErrKeyUserNotFound)
	case errors.Is(err, service.ErrCatalogReadOnly):
		return newAPIError(http.StatusConflict, i18n.ErrKeyCatalogReadOnly)
	case errors.Is(err, service.ErrUserExists):
		return newAPIError(http.StatusConflict, i18n.ErrKeyUserExists)
	case errors.Is(err, service.ErrInvalidCredentials):
		return newAPIError(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials)
	case errors.Is(err, service.ErrInvalidToken):
		return newAPIError(http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
	case errors.As(err, &tooLarge):
		return newAPIError(http.StatusRequestEntityTooLarge, i18n.ErrKeyPayloadTooLarge)
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return newAPIError(http.StatusUnsupportedMediaType, i18n.ErrKeyUnsupportedFormat)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return newAPIError(http.StatusServiceUnavailable, i18n.ErrKeyUnavailable)
	case errors.Is(err, context.DeadlineExceeded):
		return newAPIError(http.StatusGatewayTimeout, i18n.ErrKeyTimeout)
	case errors.Is(err, context.Canceled):
		return newAPIError(http.StatusRequestTimeout, i18n.ErrKeyTimeout)
	default:
		return newAPIError(http.StatusInternalServerError, i18n.ErrKeyInternalError)
	}
}
