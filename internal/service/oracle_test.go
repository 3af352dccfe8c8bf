package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/packing"
)

func TestTimedOracle_PassesThrough(t *testing.T) {
	c := model.Container{Width: 20, Depth: 20, Height: 20, MaxWeight: 100}
	dims := model.Dimensions{Width: 10, Depth: 10, Height: 10}

	for _, timeout := range []time.Duration{0, time.Second} {
		oracle := newTimedOracle(packing.NewLayeredOracle(), timeout)

		res, err := oracle.Place(c, dims, 1, 8)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Len(t, res.Placements, 8)

		res, err = oracle.Place(c, dims, 1, 9)
		require.NoError(t, err)
		assert.False(t, res.Success)
	}
}

func TestTimedOracle_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	slow := packing.OracleFunc(func(model.Container, model.Dimensions, float64, int) (model.PlacementResult, error) {
		<-release
		return model.PlacementResult{Success: true}, nil
	})

	_, err := newTimedOracle(slow, 5*time.Millisecond).Place(model.Container{}, model.Dimensions{}, 1, 1)

	assert.ErrorIs(t, err, packing.ErrOracleTimeout)
}

func TestOutcomeLabel(t *testing.T) {
	tests := []struct {
		name   string
		result model.PlacementResult
		err    error
		want   string
	}{
		{"placed", model.PlacementResult{Success: true}, nil, oracleResultPlaced},
		{"infeasible", model.PlacementResult{}, nil, oracleResultInfeasible},
		{"error", model.PlacementResult{Success: true}, errors.New("x"), oracleResultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeLabel(tt.result, tt.err))
		})
	}
}
