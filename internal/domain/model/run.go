package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OptimizationRun is the persisted summary of one optimization request.
type OptimizationRun struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RunID        string             `bson:"run_id" json:"id" example:"5f1c7a9e-3b6d-4c1e-9d4a-2f0e8b7c6a51"`
	RequestID    string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	UserID       string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	LocationName string             `bson:"location_name" json:"location_name" example:"Pallet Rack 1"`
	PalletName   string             `bson:"pallet_name" json:"pallet_name" example:"Standard"`
	Container    Container          `bson:"container" json:"container"`
	SKUs         []RunSKU           `bson:"skus" json:"skus"`
	DurationMS   int64              `bson:"duration_ms" json:"duration_ms"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// RunSKU is the per-SKU line of an OptimizationRun.
type RunSKU struct {
	Name        string    `bson:"name" json:"name"`
	Status      SKUStatus `bson:"status" json:"status"`
	Orientation string    `bson:"orientation,omitempty" json:"orientation,omitempty"`
	Quantity    int       `bson:"quantity" json:"quantity"`
	Layers      int       `bson:"layers" json:"layers"`
	Utilization float64   `bson:"utilization" json:"utilization"`
	TotalWeight float64   `bson:"total_weight" json:"total_weight"`
}

// NewOptimizationRun summarizes a report for persistence.
func NewOptimizationRun(runID string, report OptimizationReport) OptimizationRun {
	skus := make([]RunSKU, 0, len(report.SKUs))
	for _, s := range report.SKUs {
		skus = append(skus, RunSKU{
			Name:        s.SKU.Name,
			Status:      s.Status,
			Orientation: s.Orientation,
			Quantity:    s.Quantity,
			Layers:      len(s.Layers),
			Utilization: s.Utilization,
			TotalWeight: s.TotalWeight,
		})
	}
	return OptimizationRun{
		RunID:        runID,
		LocationName: report.Location.Name,
		PalletName:   report.Pallet.Name,
		Container:    report.Container,
		SKUs:         skus,
		DurationMS:   report.DurationMS,
		CreatedAt:    report.GeneratedAt,
	}
}

// RunQueryOptions filters optimization history.
type RunQueryOptions struct {
	LocationName string
	UserID       string
	Limit        int
	Skip         int
}
