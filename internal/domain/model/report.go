package model

import "time"

// SKUStatus distinguishes a packed SKU from one that cannot be stored at all.
type SKUStatus string

const (
	SKUStatusPacked     SKUStatus = "packed"
	SKUStatusInfeasible SKUStatus = "infeasible"
)

// SKUReport is the per-SKU outcome of an optimization.
//
// @Description Best orientation, quantity and layer breakdown for one SKU
type SKUReport struct {
	SKU         SKU                `json:"sku"`
	Status      SKUStatus          `json:"status" example:"packed"`
	Orientation string             `json:"orientation,omitempty" example:"Standard (W×D×H)"`
	OrientedDim *Dimensions        `json:"oriented_dimensions,omitempty"`
	Quantity    int                `json:"quantity" example:"60"`
	Utilization float64            `json:"utilization" example:"0.5117"`
	TotalWeight float64            `json:"total_weight" example:"330"`
	Layers      []Layer            `json:"layers"`
	Trials      []OrientationTrial `json:"trials,omitempty"`
	Placements  []Placement        `json:"placements,omitempty"`
}

// OptimizationReport is the result for one location/pallet pair and a batch of SKUs.
//
// @Description Optimization result for a batch of SKUs
type OptimizationReport struct {
	RunID       string      `json:"run_id,omitempty" example:"5f1c7a9e-3b6d-4c1e-9d4a-2f0e8b7c6a51"`
	Location    Location    `json:"location"`
	Pallet      Pallet      `json:"pallet"`
	Container   Container   `json:"container"`
	SKUs        []SKUReport `json:"skus"`
	GeneratedAt time.Time   `json:"generated_at"`
	DurationMS  int64       `json:"duration_ms"`
}

// PackedCount returns the number of SKUs with at least one unit placed.
func (r OptimizationReport) PackedCount() int {
	n := 0
	for _, s := range r.SKUs {
		if s.Status == SKUStatusPacked {
			n++
		}
	}
	return n
}
