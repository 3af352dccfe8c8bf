package service

import "errors"

var (
	// ErrLocationNotFound is returned when a location name is not in the catalog.
	ErrLocationNotFound = errors.New("location not found")
	// ErrPalletNotFound is returned when a pallet name is not in the catalog.
	ErrPalletNotFound = errors.New("pallet not found")
	// ErrCatalogReadOnly is returned for writes against the built-in or file catalog.
	ErrCatalogReadOnly = errors.New("catalog is read-only")
	// ErrInvalidCatalogEntry is returned when a location or pallet fails validation.
	ErrInvalidCatalogEntry = errors.New("invalid catalog entry")
	// ErrInvalidSKU is returned when a SKU in a request fails validation.
	ErrInvalidSKU = errors.New("invalid sku")
	// ErrRunNotFound is returned when an optimization run id is unknown.
	ErrRunNotFound = errors.New("optimization run not found")
	// ErrHistoryDisabled is returned when run history is requested without a database.
	ErrHistoryDisabled = errors.New("optimization history is disabled")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned when trying to register an existing user.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when a user id is unknown.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)
