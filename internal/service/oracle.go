package service

import (
	"time"

	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/metrics"
	"github.com/guttosm/slotting-service/internal/packing"
)

// Oracle call outcomes recorded in metrics.
const (
	oracleResultPlaced     = "placed"
	oracleResultInfeasible = "infeasible"
	oracleResultError      = "error"
	oracleResultTimeout    = "timeout"
)

// timedOracle bounds every placement call and records its outcome.
// A call that outlives the timeout is abandoned and reported as packing.ErrOracleTimeout;
// the search turns that into an *OracleFailure.
type timedOracle struct {
	inner   packing.Oracle
	timeout time.Duration
}

func newTimedOracle(inner packing.Oracle, timeout time.Duration) *timedOracle {
	return &timedOracle{inner: inner, timeout: timeout}
}

type placeOutcome struct {
	result model.PlacementResult
	err    error
}

func (o *timedOracle) Place(c model.Container, dims model.Dimensions, unitWeight float64, quantity int) (model.PlacementResult, error) {
	start := time.Now()
	if o.timeout <= 0 {
		result, err := o.inner.Place(c, dims, unitWeight, quantity)
		metrics.RecordOracleCall(time.Since(start), outcomeLabel(result, err))
		return result, err
	}

	done := make(chan placeOutcome, 1)
	go func() {
		result, err := o.inner.Place(c, dims, unitWeight, quantity)
		done <- placeOutcome{result: result, err: err}
	}()

	timer := time.NewTimer(o.timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		metrics.RecordOracleCall(time.Since(start), outcomeLabel(out.result, out.err))
		return out.result, out.err
	case <-timer.C:
		metrics.RecordOracleCall(time.Since(start), oracleResultTimeout)
		return model.PlacementResult{}, packing.ErrOracleTimeout
	}
}

func outcomeLabel(result model.PlacementResult, err error) string {
	switch {
	case err != nil:
		return oracleResultError
	case result.Success:
		return oracleResultPlaced
	default:
		return oracleResultInfeasible
	}
}
