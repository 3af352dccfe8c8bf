package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/internal/catalog"
	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/packing"
	"github.com/guttosm/slotting-service/internal/service"
	"github.com/guttosm/slotting-service/internal/service/cache"
)

func cubeSKU(name string, edge, weight float64) model.SKU {
	return model.SKU{Name: name, Dimensions: model.Dimensions{Width: edge, Depth: edge, Height: edge}, Weight: weight}
}

func rackRequest(skus ...model.SKU) dto.OptimizeRequest {
	return dto.OptimizeRequest{Location: "Pallet Rack 1", Pallet: "Standard", SKUs: skus}
}

type countingOracle struct {
	inner packing.Oracle
	calls atomic.Int64
}

func (o *countingOracle) Place(c model.Container, dims model.Dimensions, unitWeight float64, quantity int) (model.PlacementResult, error) {
	o.calls.Add(1)
	return o.inner.Place(c, dims, unitWeight, quantity)
}

type recordingRuns struct {
	mu   sync.Mutex
	runs []model.OptimizationRun
	err  error
}

func (r *recordingRuns) Record(_ context.Context, run *model.OptimizationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, *run)
	return r.err
}

func TestOptimizerService_PalletRackEndToEnd(t *testing.T) {
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil))

	result, err := svc.Optimize(context.Background(), rackRequest(cubeSKU("Cube", 10, 5)), service.Caller{})

	require.NoError(t, err)
	report := result.Report
	assert.False(t, result.Cached)
	assert.NotEmpty(t, report.RunID)
	assert.InDelta(t, 45.6, report.Container.Width, 1e-9)
	assert.InDelta(t, 38.0, report.Container.Depth, 1e-9)
	assert.InDelta(t, 54.0, report.Container.Height, 1e-9)
	assert.InDelta(t, 970.0, report.Container.MaxWeight, 1e-9)

	require.Len(t, report.SKUs, 1)
	sku := report.SKUs[0]
	assert.Equal(t, model.SKUStatusPacked, sku.Status)
	assert.Equal(t, "Standard (W×D×H)", sku.Orientation)
	assert.Equal(t, 60, sku.Quantity)
	assert.Equal(t, 330.0, sku.TotalWeight)
	require.Len(t, sku.Layers, 5)
	assert.Equal(t, 6.0, sku.Layers[0].Elevation)
	assert.Equal(t, 46.0, sku.Layers[4].Elevation)
	for _, l := range sku.Layers {
		assert.Equal(t, 12, l.Count)
	}
	assert.Empty(t, sku.Trials)
	assert.Empty(t, sku.Placements)
}

func TestOptimizerService_TinySKUFitsWithinOracleTimeout(t *testing.T) {
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil), service.WithOracleTimeout(5*time.Second))

	start := time.Now()
	result, err := svc.Optimize(context.Background(), rackRequest(cubeSKU("Washer", 0.005, 0.01)), service.Caller{})

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	sku := result.Report.SKUs[0]
	assert.Equal(t, model.SKUStatusPacked, sku.Status)
	assert.Equal(t, packing.MaxQuantityCeiling, sku.Quantity)
	require.Len(t, sku.Layers, 1)
	assert.Equal(t, packing.MaxQuantityCeiling, sku.Layers[0].Count)
}

func TestOptimizerService_OptionalDetails(t *testing.T) {
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil))
	req := rackRequest(cubeSKU("Cube", 10, 5))
	req.IncludeTrials = true
	req.IncludePlacements = true

	result, err := svc.Optimize(context.Background(), req, service.Caller{})

	require.NoError(t, err)
	sku := result.Report.SKUs[0]
	assert.Len(t, sku.Trials, model.OrientationCount)
	assert.Len(t, sku.Placements, 60)
}

func TestOptimizerService_BatchKeepsOrderAndIsolatesInfeasible(t *testing.T) {
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil), service.WithWorkers(2, 3))
	skus := []model.SKU{
		cubeSKU("Small", 5, 1),
		cubeSKU("Huge", 100, 1),
		{Name: "", Dimensions: model.Dimensions{Width: 20, Depth: 10, Height: 8}, Weight: 0},
	}

	result, err := svc.Optimize(context.Background(), rackRequest(skus...), service.Caller{})

	require.NoError(t, err)
	got := result.Report.SKUs
	require.Len(t, got, 3)
	assert.Equal(t, "Small", got[0].SKU.Name)
	assert.Equal(t, model.SKUStatusPacked, got[0].Status)

	assert.Equal(t, "Huge", got[1].SKU.Name)
	assert.Equal(t, model.SKUStatusInfeasible, got[1].Status)
	assert.Zero(t, got[1].Quantity)
	assert.Empty(t, got[1].Layers)
	assert.Equal(t, 30.0, got[1].TotalWeight)

	assert.Equal(t, "SKU 3", got[2].SKU.Name)
	assert.Equal(t, model.DefaultSKUWeight, got[2].SKU.Weight)
	assert.Equal(t, 2, result.Report.PackedCount())
}

func TestOptimizerService_TrialBudgetSpansSKUs(t *testing.T) {
	var inFlight, peak atomic.Int32
	oracle := packing.OracleFunc(func(c model.Container, dims model.Dimensions, unitWeight float64, quantity int) (model.PlacementResult, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		return packing.NewLayeredOracle().Place(c, dims, unitWeight, quantity)
	})
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil),
		service.WithOracle(oracle), service.WithWorkers(2, 5))

	skus := make([]model.SKU, 5)
	for i := range skus {
		skus[i] = model.SKU{Name: "Carton", Dimensions: model.Dimensions{Width: 12, Depth: 8, Height: float64(4 + i)}, Weight: 1}
	}
	result, err := svc.Optimize(context.Background(), rackRequest(skus...), service.Caller{})

	require.NoError(t, err)
	assert.Equal(t, 5, result.Report.PackedCount())
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Positive(t, peak.Load())
}

func TestOptimizerService_Errors(t *testing.T) {
	lowShelf, err := catalog.New(
		[]model.Location{{Name: "Low Shelf", Dimensions: model.Dimensions{Width: 48, Depth: 40, Height: 5}, MaxWeight: 1000}},
		[]model.Pallet{{Name: "Standard", Dimensions: model.Dimensions{Width: 48, Depth: 40, Height: 6}, Weight: 30}},
	)
	require.NoError(t, err)

	tests := []struct {
		name    string
		catalog *catalog.Catalog
		opts    []service.OptimizerOption
		req     dto.OptimizeRequest
		check   func(*testing.T, error)
	}{
		{
			name: "unknown location",
			req:  dto.OptimizeRequest{Location: "Attic", Pallet: "Standard", SKUs: []model.SKU{cubeSKU("A", 1, 1)}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrLocationNotFound)
			},
		},
		{
			name: "unknown pallet",
			req:  dto.OptimizeRequest{Location: "Pallet Rack 1", Pallet: "Crate", SKUs: []model.SKU{cubeSKU("A", 1, 1)}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrPalletNotFound)
			},
		},
		{
			name:    "pallet taller than location",
			catalog: lowShelf,
			req:     dto.OptimizeRequest{Location: "Low Shelf", Pallet: "Standard", SKUs: []model.SKU{cubeSKU("A", 1, 1)}},
			check: func(t *testing.T, err error) {
				var cfgErr *packing.ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, "Low Shelf", cfgErr.Location)
				assert.Contains(t, service.DescribeError(err), "cannot hold pallet")
			},
		},
		{
			name: "no skus",
			req:  rackRequest(),
			check: func(t *testing.T, err error) {
				var vErr *dto.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "skus", vErr.Field)
				assert.NotErrorIs(t, err, service.ErrInvalidSKU)
			},
		},
		{
			name: "batch too large",
			opts: []service.OptimizerOption{service.WithMaxSKUs(2)},
			req:  rackRequest(cubeSKU("A", 1, 1), cubeSKU("B", 1, 1), cubeSKU("C", 1, 1)),
			check: func(t *testing.T, err error) {
				var vErr *dto.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr.Message, "at most 2")
			},
		},
		{
			name: "invalid sku dimensions",
			req:  rackRequest(cubeSKU("A", 1, 1), model.SKU{Name: "Flat", Dimensions: model.Dimensions{Width: 10, Depth: 10}}),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidSKU)
				var vErr *dto.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "skus[1]", vErr.Field)
			},
		},
		{
			name: "oracle failure aborts the batch",
			opts: []service.OptimizerOption{service.WithOracle(packing.OracleFunc(
				func(model.Container, model.Dimensions, float64, int) (model.PlacementResult, error) {
					return model.PlacementResult{}, errors.New("solver crashed")
				}))},
			req: rackRequest(cubeSKU("A", 10, 1), cubeSKU("B", 5, 1)),
			check: func(t *testing.T, err error) {
				assert.True(t, packing.IsOracleFailure(err))
				assert.ErrorContains(t, err, "solver crashed")
			},
		},
		{
			name: "slow oracle times out",
			opts: []service.OptimizerOption{
				service.WithOracleTimeout(10 * time.Millisecond),
				service.WithOracle(packing.OracleFunc(
					func(model.Container, model.Dimensions, float64, int) (model.PlacementResult, error) {
						time.Sleep(200 * time.Millisecond)
						return model.PlacementResult{}, nil
					})),
			},
			req: rackRequest(cubeSKU("A", 10, 1)),
			check: func(t *testing.T, err error) {
				assert.True(t, packing.IsOracleFailure(err))
				assert.ErrorIs(t, err, packing.ErrOracleTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewOptimizerService(service.NewStaticCatalogService(tt.catalog), tt.opts...)

			result, err := svc.Optimize(context.Background(), tt.req, service.Caller{RequestID: "req-1"})

			require.Error(t, err)
			assert.Nil(t, result)
			tt.check(t, err)
		})
	}
}

func TestOptimizerService_CanceledContext(t *testing.T) {
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Optimize(ctx, rackRequest(cubeSKU("Cube", 10, 5)), service.Caller{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptimizerService_ResultCache(t *testing.T) {
	oracle := &countingOracle{inner: packing.NewLayeredOracle()}
	results := cache.NewSharded[*model.OptimizationReport](16, time.Minute, 2)
	defer results.Stop()
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil),
		service.WithOracle(oracle),
		service.WithResultCache(results),
	)

	first, err := svc.Optimize(context.Background(), rackRequest(cubeSKU("Cube", 10, 5)), service.Caller{})
	require.NoError(t, err)
	calls := oracle.calls.Load()
	require.Positive(t, calls)

	second, err := svc.Optimize(context.Background(), rackRequest(cubeSKU(" Cube ", 10, 5)), service.Caller{})
	require.NoError(t, err)

	assert.True(t, second.Cached)
	assert.Equal(t, calls, oracle.calls.Load())
	assert.Equal(t, first.Report.SKUs, second.Report.SKUs)
	assert.NotEqual(t, first.Report.RunID, second.Report.RunID)

	third, err := svc.Optimize(context.Background(), rackRequest(cubeSKU("Cube", 10, 6)), service.Caller{})
	require.NoError(t, err)
	assert.False(t, third.Cached)
}

func TestOptimizerService_RecordsRuns(t *testing.T) {
	runs := &recordingRuns{}
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil), service.WithRunRecorder(runs))

	result, err := svc.Optimize(context.Background(), rackRequest(cubeSKU("Cube", 10, 5)),
		service.Caller{RequestID: "req-9", UserID: "user-3"})

	require.NoError(t, err)
	require.Len(t, runs.runs, 1)
	run := runs.runs[0]
	assert.Equal(t, result.Report.RunID, run.RunID)
	assert.Equal(t, "req-9", run.RequestID)
	assert.Equal(t, "user-3", run.UserID)
	assert.Equal(t, "Standard", run.PalletName)
	assert.Equal(t, 60, run.SKUs[0].Quantity)
}

func TestOptimizerService_RunRecorderFailureIsNotFatal(t *testing.T) {
	runs := &recordingRuns{err: errors.New("database unavailable")}
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil), service.WithRunRecorder(runs))

	result, err := svc.Optimize(context.Background(), rackRequest(cubeSKU("Cube", 10, 5)), service.Caller{})

	require.NoError(t, err)
	assert.Equal(t, 60, result.Report.SKUs[0].Quantity)
}

func TestOptimizerService_DoesNotMutateRequest(t *testing.T) {
	svc := service.NewOptimizerService(service.NewStaticCatalogService(nil))
	skus := []model.SKU{{Name: "  ", Dimensions: model.Dimensions{Width: 10, Depth: 10, Height: 10}}}

	_, err := svc.Optimize(context.Background(), rackRequest(skus...), service.Caller{})

	require.NoError(t, err)
	assert.Equal(t, "  ", skus[0].Name)
	assert.Zero(t, skus[0].Weight)
}
