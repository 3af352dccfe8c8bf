package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/slotting-service/internal/metrics"
	"github.com/guttosm/slotting-service/internal/middleware"
	"github.com/guttosm/slotting-service/internal/service"
	"github.com/guttosm/slotting-service/internal/service/cache"
)

// APIPrefix is the base path of every business route.
const APIPrefix = "/api/v1"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	// MaxUploadBytes is the ceiling on every API body; JSON routes are further capped at
	// MaxBodyBytes.
	MaxUploadBytes int64
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	// APIKeys and AuthService enable authentication. With neither, every route is open.
	APIKeys     map[string]bool
	AuthService service.AuthService
	AuditLogger *middleware.AsyncLogger
	Idempotency cache.Cache[*middleware.CachedResponse]
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
		MaxBodyBytes:   1 << 20,
		MaxUploadBytes: 5 << 20,
	}
}

// AuthEnabled reports whether routes require credentials.
func (cfg *RouterConfig) AuthEnabled() bool {
	return cfg.AuthService != nil || len(cfg.APIKeys) > 0
}

// requireRole returns the role guard for a route, or a pass-through when auth is off.
func (cfg *RouterConfig) requireRole(role string) gin.HandlerFunc {
	if !cfg.AuthEnabled() {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RequireRole(role)
}

// bodyLimit caps JSON request bodies.
func (cfg *RouterConfig) bodyLimit() gin.HandlerFunc {
	return middleware.BodyLimit(cfg.MaxBodyBytes)
}

// Router is the configured gin engine plus the background workers it owns.
type Router struct {
	*gin.Engine
	limiters []*middleware.RateLimiter
}

// Close stops the rate limiter sweepers.
func (r *Router) Close() {
	for _, l := range r.limiters {
		l.Stop()
	}
}

// NewRouter creates and configures the Gin router for the slotting service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *Router {
	r := &Router{Engine: gin.New()}

	r.configureGlobalMiddleware(&cfg)
	registerInfrastructureRoutes(r.Engine, healthHandler, &cfg)

	api := r.Group(APIPrefix)
	api.Use(
		middleware.Deadline(cfg.RequestTimeout),
		middleware.BodyLimit(max(cfg.MaxBodyBytes, cfg.MaxUploadBytes)),
	)

	protected := api
	if cfg.AuthEnabled() {
		var authRoutes *AuthRoutes
		if cfg.AuthService != nil {
			authRoutes = NewAuthRoutes(cfg.AuthService, cfg.AuditLogger)
			authRoutes.RegisterPublicRoutes(api, &cfg)
		}

		protected = r.protectedGroup(api, &cfg)
		if authRoutes != nil {
			authRoutes.RegisterRoutes(protected, &cfg)
		}
	}

	if cfg.Idempotency != nil {
		protected.Use(middleware.Idempotency(cfg.Idempotency))
	}
	if handler != nil {
		NewSlottingRoutes(handler).RegisterRoutes(protected, &cfg)
	}

	return r
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func (r *Router) configureGlobalMiddleware(cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language",
			"Authorization", "X-Refresh-Token", "Accept", "Cache-Control", "X-Requested-With",
			middleware.APIKeyHeader, middleware.IdempotencyKeyHeader, middleware.RequestIDHeader,
		},
		ExposeHeaders: []string{
			middleware.RequestIDHeader, middleware.IdempotencyReplayedHeader,
			RunIDHeader, CacheHeader, CatalogReadOnlyHeader, "Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.AuditLogger),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.limiters = append(r.limiters, limiter)
		r.Use(limiter.RateLimit())
	}
}

// protectedGroup authenticates every request and applies the per-caller rate limit.
func (r *Router) protectedGroup(api *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	var tokens middleware.TokenValidator
	if cfg.AuthService != nil {
		tokens = cfg.AuthService
	}

	protected := api.Group("")
	protected.Use(middleware.Authenticate(tokens, cfg.APIKeys))

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.limiters = append(r.limiters, limiter)
		protected.Use(limiter.UserRateLimit())
	}
	return protected
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
