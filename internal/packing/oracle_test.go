package packing

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

func standardContainer() model.Container {
	return model.Container{Width: 45.6, Depth: 38, Height: 54, MaxWeight: 970, BaseHeight: 6}
}

func cube(edge float64) model.Dimensions {
	return model.Dimensions{Width: edge, Depth: edge, Height: edge}
}

func TestLayeredOracle_Place(t *testing.T) {
	oracle := NewLayeredOracle()

	tests := []struct {
		name       string
		container  model.Container
		dims       model.Dimensions
		unitWeight float64
		quantity   int
		success    bool
	}{
		{name: "zero units always fit", container: standardContainer(), dims: cube(10), unitWeight: 5, quantity: 0, success: true},
		{name: "single unit", container: standardContainer(), dims: cube(10), unitWeight: 5, quantity: 1, success: true},
		{name: "full capacity", container: standardContainer(), dims: cube(10), unitWeight: 5, quantity: 60, success: true},
		{name: "one over capacity", container: standardContainer(), dims: cube(10), unitWeight: 5, quantity: 61, success: false},
		{name: "too tall", container: standardContainer(), dims: model.Dimensions{Width: 10, Depth: 10, Height: 55}, unitWeight: 5, quantity: 1, success: false},
		{name: "too heavy", container: standardContainer(), dims: cube(10), unitWeight: 500, quantity: 2, success: false},
		{name: "weight limit exactly met", container: standardContainer(), dims: cube(10), unitWeight: 97, quantity: 10, success: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := oracle.Place(tt.container, tt.dims, tt.unitWeight, tt.quantity)
			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			if tt.success {
				assert.Equal(t, tt.quantity, res.Count())
			} else {
				assert.Zero(t, res.Count())
			}
		})
	}
}

func TestLayeredOracle_RejectsMalformedInput(t *testing.T) {
	oracle := NewLayeredOracle()

	tests := []struct {
		name       string
		container  model.Container
		dims       model.Dimensions
		unitWeight float64
		quantity   int
	}{
		{name: "zero height container", container: model.Container{Width: 10, Depth: 10, MaxWeight: 10}, dims: cube(1), unitWeight: 1, quantity: 1},
		{name: "no weight capacity", container: model.Container{Width: 10, Depth: 10, Height: 10}, dims: cube(1), unitWeight: 1, quantity: 1},
		{name: "negative unit edge", container: standardContainer(), dims: model.Dimensions{Width: -1, Depth: 1, Height: 1}, unitWeight: 1, quantity: 1},
		{name: "zero unit weight", container: standardContainer(), dims: cube(1), unitWeight: 0, quantity: 1},
		{name: "negative quantity", container: standardContainer(), dims: cube(1), unitWeight: 1, quantity: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := oracle.Place(tt.container, tt.dims, tt.unitWeight, tt.quantity)
			assert.Error(t, err)
		})
	}
}

func TestLayeredOracle_StacksLayersBottomUp(t *testing.T) {
	res, err := NewLayeredOracle().Place(standardContainer(), cube(10), 5, 14)
	require.NoError(t, err)
	require.True(t, res.Success)

	// 4 x 3 per layer: the first 12 fill z=0, the remaining 2 start z=10
	for i, p := range res.Placements {
		if i < 12 {
			assert.Equal(t, 0.0, p.Z)
		} else {
			assert.Equal(t, 10.0, p.Z)
		}
	}
	assert.Equal(t, model.Placement{X: 0, Y: 0, Z: 0, Dims: cube(10)}, res.Placements[0])
	assert.Equal(t, model.Placement{X: 10, Y: 0, Z: 0, Dims: cube(10)}, res.Placements[1])
	assert.Equal(t, model.Placement{X: 0, Y: 10, Z: 0, Dims: cube(10)}, res.Placements[4])
}

// checkPlacementContract asserts the capacity contract every oracle result must satisfy.
func checkPlacementContract(t *testing.T, c model.Container, dims model.Dimensions, unitWeight float64, quantity int, res model.PlacementResult) {
	t.Helper()

	if !res.Success {
		return
	}
	require.Equal(t, quantity, res.Count(), "placed count must match the request")
	assert.LessOrEqual(t, float64(res.Count())*unitWeight, c.MaxWeight+1e-6, "weight capacity exceeded")

	for i, p := range res.Placements {
		assert.True(t, p.Dims.Equal(dims), "placement %d changed orientation", i)
		assert.GreaterOrEqual(t, p.X, -1e-9)
		assert.GreaterOrEqual(t, p.Y, -1e-9)
		assert.GreaterOrEqual(t, p.Z, -1e-9)
		assert.LessOrEqual(t, p.X+p.Dims.Width, c.Width+1e-6, "placement %d exceeds width", i)
		assert.LessOrEqual(t, p.Y+p.Dims.Depth, c.Depth+1e-6, "placement %d exceeds depth", i)
		assert.LessOrEqual(t, p.Z+p.Dims.Height, c.Height+1e-6, "placement %d exceeds height", i)
		for j := i + 1; j < len(res.Placements); j++ {
			assert.False(t, p.Overlaps(res.Placements[j]), "placements %d and %d overlap", i, j)
		}
	}
}

func TestLayeredOracle_RandomizedContract(t *testing.T) {
	oracle := NewLayeredOracle()
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		c := model.Container{
			Width:     5 + rng.Float64()*60,
			Depth:     5 + rng.Float64()*60,
			Height:    5 + rng.Float64()*80,
			MaxWeight: 10 + rng.Float64()*1500,
		}
		dims := model.Dimensions{
			Width:  1 + rng.Float64()*20,
			Depth:  1 + rng.Float64()*20,
			Height: 1 + rng.Float64()*20,
		}
		unitWeight := 0.5 + rng.Float64()*40
		quantity := rng.Intn(80)

		res, err := oracle.Place(c, dims, unitWeight, quantity)
		require.NoError(t, err)
		checkPlacementContract(t, c, dims, unitWeight, quantity, res)
	}
}

func TestLayeredOracle_MonotoneInQuantity(t *testing.T) {
	oracle := NewLayeredOracle()
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		c := model.Container{
			Width:     10 + rng.Float64()*40,
			Depth:     10 + rng.Float64()*40,
			Height:    10 + rng.Float64()*40,
			MaxWeight: 50 + rng.Float64()*500,
		}
		dims := model.Dimensions{
			Width:  2 + rng.Float64()*10,
			Depth:  2 + rng.Float64()*10,
			Height: 2 + rng.Float64()*10,
		}
		unitWeight := 1 + rng.Float64()*10

		failedAt := -1
		for q := 1; q <= MaxQuantityCeiling; q++ {
			res, err := oracle.Place(c, dims, unitWeight, q)
			require.NoError(t, err)
			if !res.Success && failedAt < 0 {
				failedAt = q
			}
			if failedAt > 0 {
				assert.False(t, res.Success, "quantity %d succeeded after %d failed", q, failedAt)
			}
		}
	}
}

func TestLayeredOracle_PrefixStable(t *testing.T) {
	oracle := NewLayeredOracle()
	c := standardContainer()
	dims := model.Dimensions{Width: 7, Depth: 9, Height: 11}

	small, err := oracle.Place(c, dims, 2, 20)
	require.NoError(t, err)
	large, err := oracle.Place(c, dims, 2, 35)
	require.NoError(t, err)

	require.True(t, small.Success)
	require.True(t, large.Success)
	assert.Equal(t, small.Placements, large.Placements[:20])
}

func TestLayeredOracle_TinyUnitsScaleWithQuantity(t *testing.T) {
	oracle := NewLayeredOracle()
	c := standardContainer()

	start := time.Now()
	res, err := oracle.Place(c, cube(0.005), 0.01, MaxQuantityCeiling)
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, MaxQuantityCeiling, res.Count())
	assert.Less(t, elapsed, time.Second)
	for _, p := range res.Placements {
		assert.Zero(t, p.Z)
	}
}

func TestLayerPattern_CappedIsPrefixOfFull(t *testing.T) {
	full := layerPattern(45.6, 38, 7, 9, math.MaxInt32)
	require.Len(t, full, 24)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero", 0, 0},
		{"partial row", 3, 3},
		{"partial layer", 10, 10},
		{"exact layer", 24, 24},
		{"above layer", 100, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layerPattern(45.6, 38, 7, 9, tt.limit)
			require.Len(t, got, tt.want)
			assert.Equal(t, full[:tt.want], got)
		})
	}
}

func FuzzLayeredOracle(f *testing.F) {
	f.Add(45.6, 38.0, 54.0, 970.0, 10.0, 10.0, 10.0, 5.0, 60)
	f.Add(17.1, 32.0, 54.0, 275.0, 3.5, 7.25, 11.0, 2.0, 40)
	f.Add(24.0, 40.0, 90.0, 180.0, 24.0, 40.0, 1.0, 0.1, 300)

	oracle := NewLayeredOracle()
	f.Fuzz(func(t *testing.T, cw, cd, ch, cmax, w, d, h, unitWeight float64, quantity int) {
		c := model.Container{Width: cw, Depth: cd, Height: ch, MaxWeight: cmax}
		dims := model.Dimensions{Width: w, Depth: d, Height: h}
		if validateOracleInput(c, dims, unitWeight, quantity) != nil {
			t.Skip()
		}
		if quantity > 500 || cw/w > 200 || cd/d > 200 {
			t.Skip()
		}

		res, err := oracle.Place(c, dims, unitWeight, quantity)
		require.NoError(t, err)
		checkPlacementContract(t, c, dims, unitWeight, quantity, res)
	})
}

func TestOracleFunc(t *testing.T) {
	called := 0
	var oracle Oracle = OracleFunc(func(c model.Container, dims model.Dimensions, unitWeight float64, quantity int) (model.PlacementResult, error) {
		called++
		return model.PlacementResult{Success: true, Placements: make([]model.Placement, quantity)}, nil
	})

	res, err := oracle.Place(standardContainer(), cube(1), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count())
	assert.Equal(t, 1, called)
}
