package packing

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

const (
	utilizationPlaces = 4
	weightPlaces      = 3
)

// ReportOptions controls the optional parts of a SKU report.
type ReportOptions struct {
	IncludeTrials     bool
	IncludePlacements bool
}

// BuildSKUReport turns an evaluation into the per-SKU report: orientation label, quantity,
// space utilization (unit volume over usable container volume) and total loaded weight
// (units plus pallet).
func BuildSKUReport(eval model.Evaluation, c model.Container, pallet model.Pallet, opts ReportOptions) model.SKUReport {
	report := model.SKUReport{
		SKU:         eval.SKU,
		Status:      model.SKUStatusInfeasible,
		Layers:      []model.Layer{},
		TotalWeight: TotalWeight(0, eval.SKU.Weight, pallet.Weight),
	}
	if opts.IncludeTrials {
		report.Trials = eval.Trials
	}
	if !eval.Feasible() {
		return report
	}

	sol := eval.Solution
	dims := sol.Orientation.Dims
	report.Status = model.SKUStatusPacked
	report.Orientation = sol.Orientation.Label()
	report.OrientedDim = &dims
	report.Quantity = sol.Quantity
	report.Utilization = Utilization(sol.Quantity, eval.SKU.Dimensions, c)
	report.TotalWeight = TotalWeight(sol.Quantity, eval.SKU.Weight, pallet.Weight)
	report.Layers = sol.Layers
	if opts.IncludePlacements {
		report.Placements = sol.Result.Placements
	}
	return report
}

// Utilization is the share of the usable container volume filled by quantity units, rounded to 4 places.
func Utilization(quantity int, unit model.Dimensions, c model.Container) float64 {
	capacity := decimal.NewFromFloat(c.Volume())
	if !capacity.IsPositive() {
		return 0
	}
	used := decimal.NewFromFloat(unit.Volume()).Mul(decimal.NewFromInt(int64(quantity)))
	return used.Div(capacity).Round(utilizationPlaces).InexactFloat64()
}

// TotalWeight is quantity units plus the pallet, rounded to 3 places.
func TotalWeight(quantity int, unitWeight, palletWeight float64) float64 {
	return decimal.NewFromFloat(unitWeight).
		Mul(decimal.NewFromInt(int64(quantity))).
		Add(decimal.NewFromFloat(palletWeight)).
		Round(weightPlaces).
		InexactFloat64()
}
