package http

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/circuitbreaker"
)

const readinessTimeout = 3 * time.Second

// HealthChecker reports whether a dependency can serve traffic.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// CheckFunc adapts a function to HealthChecker.
type CheckFunc func(ctx context.Context) error

// Check calls f.
func (f CheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	mu              sync.RWMutex
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	info            map[string]string
}

// NewHealthHandler creates a HealthHandler with no dependencies.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		info:            make(map[string]string),
	}
}

// RegisterChecker adds a readiness dependency.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// RegisterCircuitBreaker reports cb in readiness; an open breaker makes the service not ready.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.circuitBreakers[name] = cb
}

// SetInfo publishes a static fact (catalog mode, history) in readiness responses.
func (h *HealthHandler) SetInfo(key, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.info[key] = value
}

// Register mounts /healthz and /readyz.
func (h *HealthHandler) Register(router gin.IRouter) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe.
//
// @Summary     Liveness probe
// @Description Returns OK while the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe.
//
// @Summary     Readiness probe
// @Description Returns OK when every dependency answers and no circuit breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	h.mu.RLock()
	defer h.mu.RUnlock()

	status := http.StatusOK
	checks := make(map[string]string, len(h.checkers))
	for name, checker := range h.checkers {
		if err := checker.Check(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}
	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	names := make([]string, 0, len(h.circuitBreakers))
	for name := range h.circuitBreakers {
		names = append(names, name)
	}
	sort.Strings(names)
	breakers := make([]circuitbreaker.Stats, 0, len(names))
	for _, name := range names {
		stats := h.circuitBreakers[name].GetStats()
		stats.Name = name
		if stats.State == circuitbreaker.StateOpen.String() {
			status = http.StatusServiceUnavailable
		}
		breakers = append(breakers, stats)
	}

	body := gin.H{
		"status":           map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK],
		"checks":           checks,
		"circuit_breakers": breakers,
	}
	if len(h.info) > 0 {
		body["info"] = h.info
	}
	c.JSON(status, body)
}
