package packing

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// Optimizer finds the orientation that stores the most units of a SKU.
type Optimizer struct {
	oracle      Oracle
	parallelism int
	shared      *semaphore.Weighted
	log         zerolog.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithParallelism bounds how many orientation trials run at once. Values below 1 mean sequential.
func WithParallelism(n int) Option {
	return func(o *Optimizer) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithLogger sets the logger used for trial diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Optimizer) {
		o.log = l
	}
}

// NewOptimizer creates an optimizer backed by oracle. Trials run on up to runtime.NumCPU() goroutines by default.
func NewOptimizer(oracle Oracle, opts ...Option) *Optimizer {
	o := &Optimizer{
		oracle:      oracle,
		parallelism: runtime.NumCPU(),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Shared returns a copy of o whose trials also hold one slot of sem while they search.
// Optimize calls running side by side on copies sharing sem stay within its weight.
func (o *Optimizer) Shared(sem *semaphore.Weighted) *Optimizer {
	cp := *o
	cp.shared = sem
	return &cp
}

// Optimize runs a feasibility search for every orientation of sku and keeps the one
// with strictly the most units; ties go to the earliest orientation in enumeration
// order regardless of which trial finished first. A nil Solution means no orientation
// fits, which is not an error.
func (o *Optimizer) Optimize(ctx context.Context, sku model.SKU, c model.Container) (model.Evaluation, error) {
	orientations := Orientations(sku.Dimensions)
	trials := make([]model.OrientationTrial, len(orientations))
	searches := make([]SearchResult, len(orientations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for i, orient := range orientations {
		trials[i] = model.OrientationTrial{
			Index: orient.Index,
			Label: orient.Label(),
			Dims:  orient.Dims,
		}

		if src, ok := firstEqual(orientations[:i], orient.Dims); ok {
			from := orientations[src].Index
			trials[i].ReusedFrom = &from
			continue
		}

		upper := UpperBound(c, orient.Dims, sku.Weight)
		trials[i].UpperBound = upper
		if upper == 0 {
			trials[i].Skipped = true
			continue
		}

		g.Go(func() error {
			if o.shared != nil {
				if err := o.shared.Acquire(gctx, 1); err != nil {
					return err
				}
				defer o.shared.Release(1)
			}
			res, err := SearchMaxQuantity(gctx, o.oracle, c, orient.Dims, sku.Weight, upper)
			if err != nil {
				return err
			}
			searches[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return model.Evaluation{}, fmt.Errorf("sku %q: %w", sku.Name, err)
	}

	best := -1
	for i := range trials {
		if trials[i].ReusedFrom != nil {
			src := int(*trials[i].ReusedFrom)
			trials[i].UpperBound = trials[src].UpperBound
			trials[i].Skipped = trials[src].Skipped
			trials[i].Quantity = searches[src].Quantity
		} else {
			trials[i].Quantity = searches[i].Quantity
			trials[i].Probes = searches[i].Probes
		}

		o.log.Debug().
			Str("sku", sku.Name).
			Str("orientation", trials[i].Label).
			Int("upper_bound", trials[i].UpperBound).
			Int("quantity", trials[i].Quantity).
			Int("probes", trials[i].Probes).
			Msg("orientation trial")

		if trials[i].Quantity > 0 && (best < 0 || trials[i].Quantity > trials[best].Quantity) {
			best = i
		}
	}

	eval := model.Evaluation{SKU: sku, Trials: trials}
	if best < 0 {
		return eval, nil
	}

	src := best
	if trials[best].ReusedFrom != nil {
		src = int(*trials[best].ReusedFrom)
	}
	result := searches[src].Result
	eval.Solution = &model.PackingSolution{
		Orientation: orientations[best],
		Quantity:    trials[best].Quantity,
		Result:      result,
		Layers:      DecomposeLayers(result, sku.Dimensions, c.BaseHeight),
	}
	return eval, nil
}

func firstEqual(orientations []model.Orientation, dims model.Dimensions) (int, bool) {
	for i, o := range orientations {
		if o.Dims.Equal(dims) {
			return i, true
		}
	}
	return 0, false
}
