package app

import (
	"sort"

	"github.com/guttosm/slotting-service/config"
	"github.com/guttosm/slotting-service/internal/http"
	"github.com/guttosm/slotting-service/internal/middleware"
	"github.com/guttosm/slotting-service/internal/service/cache"
)

// idempotencyCapacity bounds the number of replayable responses kept in memory.
const idempotencyCapacity = 10000

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	AuditLogger   *middleware.AsyncLogger
	Idempotency   *cache.Sharded[*middleware.CachedResponse]
}

// InitializeRouter builds the handlers and router configuration. db may be nil.
func InitializeRouter(svc *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	components := &RouterComponents{}

	if svc.Logging != nil {
		components.AuditLogger = middleware.NewAsyncLogger(svc.Logging, middleware.DefaultAsyncLoggerConfig())
	}

	opts := []http.HandlerOption{
		http.WithAuditLogger(components.AuditLogger),
		http.WithMaxUploadBytes(cfg.Server.MaxUploadBytes),
		http.WithMaxSKUs(svc.Optimizer.MaxSKUs()),
	}
	if svc.Runs != nil {
		opts = append(opts, http.WithRunsService(svc.Runs))
	}
	components.Handler = http.NewHandler(svc.Optimizer, svc.Catalog, opts...)

	components.HealthHandler = http.NewHealthHandler()
	components.HealthHandler.SetInfo("catalog", svc.CatalogSource)
	components.HealthHandler.SetInfo("auth", authMode(svc.Auth, cfg.Auth.APIKeys))
	if db != nil {
		components.HealthHandler.RegisterChecker("mongodb", http.CheckFunc(db.DB.HealthCheck))
		names := make([]string, 0, len(db.Breakers))
		for name := range db.Breakers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			components.HealthHandler.RegisterCircuitBreaker(name, db.Breakers[name])
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		APIKeys:        cfg.Auth.APIKeys,
		AuthService:    svc.Auth,
		AuditLogger:    components.AuditLogger,
	}
	if cfg.Server.IdempotencyTTL > 0 {
		components.Idempotency = middleware.NewIdempotencyCache(idempotencyCapacity, cfg.Server.IdempotencyTTL)
		routerCfg.Idempotency = components.Idempotency
	}
	components.Config = routerCfg

	return components
}
