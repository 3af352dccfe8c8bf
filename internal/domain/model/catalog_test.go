package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSKU_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		sku      SKU
		index    int
		validate func(*testing.T, SKU)
	}{
		{
			name:  "zero weight defaults to one",
			sku:   SKU{Name: "Widget", Dimensions: Dimensions{Width: 1, Depth: 1, Height: 1}},
			index: 0,
			validate: func(t *testing.T, s SKU) {
				assert.Equal(t, DefaultSKUWeight, s.Weight)
				assert.Equal(t, "Widget", s.Name)
			},
		},
		{
			name:  "negative weight defaults to one",
			sku:   SKU{Name: "Widget", Weight: -3},
			index: 0,
			validate: func(t *testing.T, s SKU) {
				assert.Equal(t, DefaultSKUWeight, s.Weight)
			},
		},
		{
			name:  "blank name is generated from index",
			sku:   SKU{Name: "   ", Weight: 2},
			index: 2,
			validate: func(t *testing.T, s SKU) {
				assert.Equal(t, "SKU 3", s.Name)
				assert.Equal(t, 2.0, s.Weight)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.sku.Normalize(tt.index))
		})
	}
}

func TestSKU_Validate(t *testing.T) {
	ok := SKU{Name: "A", Dimensions: Dimensions{Width: 1, Depth: 2, Height: 3}, Weight: 1}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Height = 0
	assert.ErrorContains(t, bad.Validate(), `sku "A"`)
}

func TestLocation_Validate(t *testing.T) {
	loc := Location{Name: "Rack", Dimensions: Dimensions{Width: 48, Depth: 40, Height: 60}, MaxWeight: 1000}
	require.NoError(t, loc.Validate())

	noName := loc
	noName.Name = ""
	assert.Error(t, noName.Validate())

	noCapacity := loc
	noCapacity.MaxWeight = 0
	assert.ErrorContains(t, noCapacity.Validate(), "max_weight")
}

func TestPallet_Validate(t *testing.T) {
	p := Pallet{Name: "Standard", Dimensions: Dimensions{Width: 48, Depth: 40, Height: 6}, Weight: 30}
	require.NoError(t, p.Validate())

	weightless := p
	weightless.Weight = 0
	assert.NoError(t, weightless.Validate())

	negative := p
	negative.Weight = -1
	assert.ErrorContains(t, negative.Validate(), "weight")
}

func TestOptimizationReport_PackedCount(t *testing.T) {
	report := OptimizationReport{SKUs: []SKUReport{
		{Status: SKUStatusPacked},
		{Status: SKUStatusInfeasible},
		{Status: SKUStatusPacked},
	}}

	assert.Equal(t, 2, report.PackedCount())
}

func TestNewOptimizationRun(t *testing.T) {
	report := OptimizationReport{
		Location: Location{Name: "Pallet Rack 1"},
		Pallet:   Pallet{Name: "Standard"},
		SKUs: []SKUReport{
			{SKU: SKU{Name: "A"}, Status: SKUStatusPacked, Quantity: 60, Layers: make([]Layer, 5)},
			{SKU: SKU{Name: "B"}, Status: SKUStatusInfeasible},
		},
		DurationMS: 12,
	}

	run := NewOptimizationRun("run-1", report)

	assert.Equal(t, "run-1", run.RunID)
	assert.Equal(t, "Pallet Rack 1", run.LocationName)
	assert.Equal(t, "Standard", run.PalletName)
	require.Len(t, run.SKUs, 2)
	assert.Equal(t, 5, run.SKUs[0].Layers)
	assert.Equal(t, SKUStatusInfeasible, run.SKUs[1].Status)
	assert.Equal(t, int64(12), run.DurationMS)
}
