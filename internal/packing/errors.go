package packing

import (
	"errors"
	"fmt"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// ErrOracleTimeout is returned by time-bounded oracles when a placement call runs too long.
var ErrOracleTimeout = errors.New("placement oracle timed out")

// ConfigurationError reports a location/pallet pair that leaves nothing to pack into.
type ConfigurationError struct {
	Location string
	Pallet   string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for location %q with pallet %q: %s", e.Location, e.Pallet, e.Reason)
}

// OracleFailure wraps an unexpected error raised by a placement oracle.
// It signals a defect in the oracle or its inputs, never a capacity limit.
type OracleFailure struct {
	Dims     model.Dimensions
	Quantity int
	Err      error
}

func (e *OracleFailure) Error() string {
	return fmt.Sprintf("placement oracle failed for %g×%g×%g at quantity %d: %v",
		e.Dims.Width, e.Dims.Depth, e.Dims.Height, e.Quantity, e.Err)
}

func (e *OracleFailure) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is or wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsOracleFailure reports whether err is or wraps an *OracleFailure.
func IsOracleFailure(err error) bool {
	var target *OracleFailure
	return errors.As(err, &target)
}
