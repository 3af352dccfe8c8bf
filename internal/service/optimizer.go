package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/logger"
	"github.com/guttosm/slotting-service/internal/metrics"
	"github.com/guttosm/slotting-service/internal/packing"
	"github.com/guttosm/slotting-service/internal/service/cache"
)

// Optimization outcomes recorded in metrics.
const (
	statusSuccess       = "success"
	statusInvalid       = "invalid_request"
	statusNotFound      = "not_found"
	statusConfiguration = "configuration_error"
	statusOracleFailure = "oracle_failure"
	statusCanceled      = "canceled"
	statusError         = "error"
)

// Caller identifies who asked for an optimization. Both fields are optional.
type Caller struct {
	RequestID string
	UserID    string
}

// OptimizeResult is the outcome of one optimization request.
type OptimizeResult struct {
	Report *model.OptimizationReport
	// Cached is true when the report was served from the result cache.
	Cached bool
}

// Optimizer runs batch optimizations against the catalog.
type Optimizer interface {
	Optimize(ctx context.Context, req dto.OptimizeRequest, caller Caller) (*OptimizeResult, error)
}

// OptimizerOption configures an OptimizerService.
type OptimizerOption func(*OptimizerService)

// OptimizerService resolves the location and pallet, evaluates every SKU independently and
// assembles the report. A configuration error or an oracle failure fails the whole request;
// an SKU that does not fit is reported as infeasible.
type OptimizerService struct {
	catalog       CatalogService
	oracle        packing.Oracle
	oracleTimeout time.Duration
	trialWorkers  int
	skuWorkers    int
	maxSKUs       int
	cache         cache.Cache[*model.OptimizationReport]
	runs          RunRecorder
	optimizer     *packing.Optimizer
	log           zerolog.Logger
}

// NewOptimizerService creates an optimizer service using the built-in layered oracle.
func NewOptimizerService(catalog CatalogService, opts ...OptimizerOption) *OptimizerService {
	s := &OptimizerService{
		catalog:      catalog,
		oracle:       packing.NewLayeredOracle(),
		trialWorkers: runtime.NumCPU(),
		skuWorkers:   runtime.NumCPU(),
		maxSKUs:      10,
		log:          logger.Component("optimizer"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.optimizer = packing.NewOptimizer(
		newTimedOracle(s.oracle, s.oracleTimeout),
		packing.WithParallelism(s.trialWorkers),
		packing.WithLogger(s.log),
	)
	return s
}

// WithOracle replaces the placement oracle.
func WithOracle(o packing.Oracle) OptimizerOption {
	return func(s *OptimizerService) {
		if o != nil {
			s.oracle = o
		}
	}
}

// WithOracleTimeout bounds every oracle call. Zero disables the limit.
func WithOracleTimeout(d time.Duration) OptimizerOption {
	return func(s *OptimizerService) {
		s.oracleTimeout = d
	}
}

// WithWorkers sets the orientation trials that may search at once within a request, shared
// by all of its SKUs, and how many SKUs are scheduled concurrently.
func WithWorkers(trials, skus int) OptimizerOption {
	return func(s *OptimizerService) {
		if trials > 0 {
			s.trialWorkers = trials
		}
		if skus > 0 {
			s.skuWorkers = skus
		}
	}
}

// WithMaxSKUs caps the number of SKUs per request.
func WithMaxSKUs(n int) OptimizerOption {
	return func(s *OptimizerService) {
		if n > 0 {
			s.maxSKUs = n
		}
	}
}

// WithResultCache caches reports by request fingerprint.
func WithResultCache(c cache.Cache[*model.OptimizationReport]) OptimizerOption {
	return func(s *OptimizerService) {
		s.cache = c
	}
}

// WithRunRecorder persists a summary of every successful optimization.
func WithRunRecorder(r RunRecorder) OptimizerOption {
	return func(s *OptimizerService) {
		s.runs = r
	}
}

// MaxSKUs returns the batch size limit.
func (s *OptimizerService) MaxSKUs() int {
	return s.maxSKUs
}

// Optimize evaluates req. Validation failures are returned as *dto.ValidationError, joined
// with ErrInvalidSKU when a SKU is at fault.
func (s *OptimizerService) Optimize(ctx context.Context, req dto.OptimizeRequest, caller Caller) (*OptimizeResult, error) {
	start := time.Now()
	log := s.log.With().Str("request_id", caller.RequestID).Logger()

	result, err := s.optimize(ctx, req, caller, start, log)
	status := statusSuccess
	if err != nil {
		status = failureStatus(err)
		log.Error().Err(err).Str("status", status).Msg("optimization failed")
	}
	metrics.RecordOptimization(time.Since(start), status)
	return result, err
}

func (s *OptimizerService) optimize(ctx context.Context, req dto.OptimizeRequest, caller Caller, start time.Time, log zerolog.Logger) (*OptimizeResult, error) {
	req.SKUs = append([]model.SKU(nil), req.SKUs...)
	req.Normalize()
	if err := req.Validate(s.maxSKUs); err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) && strings.HasPrefix(vErr.Field, "skus[") {
			return nil, errors.Join(ErrInvalidSKU, err)
		}
		return nil, err
	}

	loc, err := s.catalog.GetLocation(ctx, req.Location)
	if err != nil {
		return nil, err
	}
	pallet, err := s.catalog.GetPallet(ctx, req.Pallet)
	if err != nil {
		return nil, err
	}
	container, err := packing.PlaceOnPallet(loc, pallet)
	if err != nil {
		return nil, err
	}

	key := fingerprint(loc, pallet, req)
	useCache := s.cache != nil && key != ""
	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			metrics.RecordCacheOperation("get", "hit")
			report := *cached
			report.RunID = s.record(ctx, &report, caller, log)
			return &OptimizeResult{Report: &report, Cached: true}, nil
		}
		metrics.RecordCacheOperation("get", "miss")
	}

	skus, err := s.evaluate(ctx, req, container, pallet, log)
	if err != nil {
		return nil, err
	}

	report := &model.OptimizationReport{
		Location:    loc,
		Pallet:      pallet,
		Container:   container,
		SKUs:        skus,
		GeneratedAt: time.Now().UTC(),
		DurationMS:  time.Since(start).Milliseconds(),
	}
	if useCache {
		s.cache.Set(key, report)
		metrics.RecordCacheOperation("set", "ok")
	}

	out := *report
	out.RunID = s.record(ctx, &out, caller, log)
	log.Info().
		Str("location", loc.Name).
		Str("pallet", pallet.Name).
		Int("skus", len(skus)).
		Int("packed", out.PackedCount()).
		Int64("duration_ms", out.DurationMS).
		Msg("optimization completed")
	return &OptimizeResult{Report: &out}, nil
}

// evaluate runs the SKUs concurrently. Results keep the request order.
func (s *OptimizerService) evaluate(ctx context.Context, req dto.OptimizeRequest, c model.Container, pallet model.Pallet, log zerolog.Logger) ([]model.SKUReport, error) {
	reports := make([]model.SKUReport, len(req.SKUs))
	opts := packing.ReportOptions{
		IncludeTrials:     req.IncludeTrials,
		IncludePlacements: req.IncludePlacements,
	}

	// SKU workers only schedule; the trial budget bounds oracle work across the request.
	optimizer := s.optimizer.Shared(semaphore.NewWeighted(int64(s.trialWorkers)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.skuWorkers)

	for i, sku := range req.SKUs {
		g.Go(func() error {
			eval, err := optimizer.Optimize(gctx, sku, c)
			if err != nil {
				return err
			}
			reports[i] = packing.BuildSKUReport(eval, c, pallet, opts)
			metrics.RecordSKUOutcome(string(reports[i].Status), reports[i].Quantity)
			log.Info().
				Str("sku", sku.Name).
				Str("status", string(reports[i].Status)).
				Str("orientation", reports[i].Orientation).
				Int("quantity", reports[i].Quantity).
				Int("layers", len(reports[i].Layers)).
				Msg("sku evaluated")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// record persists the run and returns its id. Persistence failures are logged and do not
// fail the request.
func (s *OptimizerService) record(ctx context.Context, report *model.OptimizationReport, caller Caller, log zerolog.Logger) string {
	runID := uuid.New().String()
	if s.runs == nil {
		return runID
	}

	run := model.NewOptimizationRun(runID, *report)
	run.RequestID = caller.RequestID
	run.UserID = caller.UserID
	run.CreatedAt = time.Now().UTC()
	if err := s.runs.Record(ctx, &run); err != nil {
		log.Warn().Err(err).Str("run_id", runID).Msg("failed to record optimization run")
	}
	return runID
}

type fingerprintInput struct {
	Location          model.Location `json:"location"`
	Pallet            model.Pallet   `json:"pallet"`
	SKUs              []model.SKU    `json:"skus"`
	IncludeTrials     bool           `json:"include_trials"`
	IncludePlacements bool           `json:"include_placements"`
}

// fingerprint keys the result cache on the resolved catalog entries, so an edited
// location or pallet never serves a stale report.
func fingerprint(loc model.Location, pallet model.Pallet, req dto.OptimizeRequest) string {
	loc.UpdatedAt = time.Time{}
	pallet.UpdatedAt = time.Time{}
	data, err := json.Marshal(fingerprintInput{
		Location:          loc,
		Pallet:            pallet,
		SKUs:              req.SKUs,
		IncludeTrials:     req.IncludeTrials,
		IncludePlacements: req.IncludePlacements,
	})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func failureStatus(err error) string {
	var vErr *dto.ValidationError
	switch {
	case errors.As(err, &vErr):
		return statusInvalid
	case errors.Is(err, ErrLocationNotFound), errors.Is(err, ErrPalletNotFound):
		return statusNotFound
	case packing.IsConfigurationError(err):
		return statusConfiguration
	case packing.IsOracleFailure(err):
		return statusOracleFailure
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return statusCanceled
	default:
		return statusError
	}
}

// DescribeError returns a short operator-facing description of an optimization error.
func DescribeError(err error) string {
	var cfgErr *packing.ConfigurationError
	if errors.As(err, &cfgErr) {
		return fmt.Sprintf("location %q cannot hold pallet %q: %s", cfgErr.Location, cfgErr.Pallet, cfgErr.Reason)
	}
	return err.Error()
}

var _ Optimizer = (*OptimizerService)(nil)
