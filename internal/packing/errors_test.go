package packing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

func TestOracleFailure_Error(t *testing.T) {
	tests := []struct {
		name string
		dims model.Dimensions
		want string
	}{
		{
			name: "whole inches",
			dims: model.Dimensions{Width: 10, Depth: 12, Height: 8},
			want: "placement oracle failed for 10×12×8 at quantity 150: boom",
		},
		{
			name: "small unit keeps its precision",
			dims: model.Dimensions{Width: 0.005, Depth: 0.005, Height: 0.005},
			want: "placement oracle failed for 0.005×0.005×0.005 at quantity 150: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &OracleFailure{Dims: tt.dims, Quantity: 150, Err: errors.New("boom")}
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	failure := fmt.Errorf("sku %q: %w", "washer", &OracleFailure{Err: ErrOracleTimeout})
	cfgErr := fmt.Errorf("wrapped: %w", &ConfigurationError{Location: "a", Pallet: "b", Reason: "c"})

	assert.True(t, IsOracleFailure(failure))
	assert.ErrorIs(t, failure, ErrOracleTimeout)
	assert.False(t, IsOracleFailure(cfgErr))
	assert.True(t, IsConfigurationError(cfgErr))
	assert.False(t, IsConfigurationError(failure))
}
