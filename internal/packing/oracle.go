package packing

import (
	"errors"
	"fmt"
	"math"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// Oracle decides whether quantity identical units of fixed orientation fit in a container.
//
// Implementations must be monotone in quantity (success at Q implies success at every
// Q' < Q), must never place more units than requested and must respect the container
// footprint, height and weight capacity. An unsuccessful result means "infeasible at
// this quantity"; a non-nil error means the call itself is broken.
type Oracle interface {
	Place(c model.Container, dims model.Dimensions, unitWeight float64, quantity int) (model.PlacementResult, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(c model.Container, dims model.Dimensions, unitWeight float64, quantity int) (model.PlacementResult, error)

// Place calls f.
func (f OracleFunc) Place(c model.Container, dims model.Dimensions, unitWeight float64, quantity int) (model.PlacementResult, error) {
	return f(c, dims, unitWeight, quantity)
}

// LayeredOracle stacks identical layers bottom-up. Each layer is filled with a maximal
// rectangles footprint packer, and units are taken layer by layer in placement order,
// so the placements for Q units are always a prefix of those for Q+1.
type LayeredOracle struct{}

// NewLayeredOracle creates the built-in oracle.
func NewLayeredOracle() *LayeredOracle {
	return &LayeredOracle{}
}

// Place implements Oracle.
func (o *LayeredOracle) Place(c model.Container, dims model.Dimensions, unitWeight float64, quantity int) (model.PlacementResult, error) {
	if err := validateOracleInput(c, dims, unitWeight, quantity); err != nil {
		return model.PlacementResult{}, err
	}
	if quantity == 0 {
		return model.PlacementResult{Success: true, Placements: []model.Placement{}}, nil
	}
	if !dims.FitsWithin(c.Bounds()) {
		return model.PlacementResult{}, nil
	}
	if float64(quantity)*unitWeight > c.MaxWeight+geomTolerance {
		return model.PlacementResult{}, nil
	}

	levels := floorDiv(c.Height, dims.Height)
	if levels == 0 {
		return model.PlacementResult{}, nil
	}
	// A layer never needs more than quantity units. A pattern shorter than the cap is a
	// full layer, and only then do further levels matter.
	pattern := layerPattern(c.Width, c.Depth, dims.Width, dims.Depth, quantity)
	if len(pattern) == 0 || quantity > len(pattern)*levels {
		return model.PlacementResult{}, nil
	}

	placements := make([]model.Placement, 0, quantity)
	for level := 0; len(placements) < quantity; level++ {
		z := float64(level) * dims.Height
		for _, p := range pattern {
			if len(placements) == quantity {
				break
			}
			placements = append(placements, model.Placement{X: p.x, Y: p.y, Z: z, Dims: dims})
		}
	}

	return model.PlacementResult{Success: true, Placements: placements}, nil
}

func validateOracleInput(c model.Container, dims model.Dimensions, unitWeight float64, quantity int) error {
	if err := c.Bounds().Validate(); err != nil {
		return fmt.Errorf("container: %w", err)
	}
	if math.IsNaN(c.MaxWeight) || c.MaxWeight <= 0 {
		return errors.New("container: max weight must be positive")
	}
	if err := dims.Validate(); err != nil {
		return fmt.Errorf("unit: %w", err)
	}
	if math.IsNaN(unitWeight) || math.IsInf(unitWeight, 0) || unitWeight <= 0 {
		return fmt.Errorf("unit weight must be positive, got %v", unitWeight)
	}
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative, got %d", quantity)
	}
	return nil
}

// floorDiv returns floor(a/b) with a small tolerance so that 54/10.8 counts as 5.
// The result saturates at math.MaxInt32.
func floorDiv(a, b float64) int {
	if b <= 0 {
		return 0
	}
	q := math.Floor(a/b + geomTolerance)
	if q > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(q)
}
