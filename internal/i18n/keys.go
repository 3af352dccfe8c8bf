package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	// ErrKeyInvalidCredentials covers both an unknown email and a wrong password.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyUnavailable        = "error.unavailable"

	ErrKeyLocationNotFound   = "error.location_not_found"
	ErrKeyPalletNotFound     = "error.pallet_not_found"
	ErrKeyRunNotFound        = "error.run_not_found"
	ErrKeyUserNotFound       = "error.user_not_found"
	ErrKeyUserExists         = "error.user_exists"
	ErrKeyInvalidSKU         = "error.invalid_sku"
	ErrKeyConfiguration      = "error.configuration"
	ErrKeyOracleFailure      = "error.oracle_failure"
	ErrKeyCatalogReadOnly    = "error.catalog_read_only"
	ErrKeyHistoryDisabled    = "error.history_disabled"
	ErrKeyUnsupportedFormat  = "error.unsupported_format"
	ErrKeyPayloadTooLarge    = "error.payload_too_large"
	ErrKeyImportFailed       = "error.import_failed"
)

// Success message translation keys.
const (
	SuccessKeyOptimized = "success.optimized"
	SuccessKeyImported  = "success.imported"
)
