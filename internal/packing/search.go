package packing

import (
	"context"
	"fmt"
	"math"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// MaxQuantityCeiling bounds the search range and therefore the number of oracle calls.
const MaxQuantityCeiling = 300

// SearchResult is the outcome of a feasibility search for one orientation.
type SearchResult struct {
	Quantity int
	Probes   int
	// Result is the placement of the best successful probe. It is empty when Quantity is 0.
	Result model.PlacementResult
}

// UpperBound estimates the most units of dims the container could hold:
// min(layers * units per layer, units the weight budget allows, MaxQuantityCeiling).
func UpperBound(c model.Container, dims model.Dimensions, unitWeight float64) int {
	if !dims.FitsWithin(c.Bounds()) {
		return 0
	}
	bound := float64(floorDiv(c.Height, dims.Height)) *
		float64(floorDiv(c.Width, dims.Width)) *
		float64(floorDiv(c.Depth, dims.Depth))
	bound = math.Min(bound, MaxQuantityCeiling)
	if unitWeight > 0 {
		bound = math.Min(bound, math.Floor(c.MaxWeight/unitWeight+geomTolerance))
	}
	if bound < 0 || math.IsNaN(bound) {
		return 0
	}
	return int(bound)
}

// SearchMaxQuantity binary searches [1, upper] for the largest quantity the oracle
// places in full. It relies on the oracle being monotone in quantity and makes one
// oracle call per probe. A quantity of 0 means not even one unit fits.
//
// Oracle errors are returned as *OracleFailure and end the search. The context is
// checked between probes.
func SearchMaxQuantity(ctx context.Context, oracle Oracle, c model.Container, dims model.Dimensions, unitWeight float64, upper int) (SearchResult, error) {
	var res SearchResult
	low, high := 1, upper

	for low <= high {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		mid := low + (high-low)/2
		placed, err := oracle.Place(c, dims, unitWeight, mid)
		res.Probes++
		if err != nil {
			return res, &OracleFailure{Dims: dims, Quantity: mid, Err: err}
		}

		if placed.Success && placed.Count() != mid {
			return res, &OracleFailure{
				Dims:     dims,
				Quantity: mid,
				Err:      fmt.Errorf("reported success with %d placements", placed.Count()),
			}
		}

		if placed.Success {
			res.Quantity = mid
			res.Result = placed
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	return res, nil
}
