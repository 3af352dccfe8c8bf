package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/slotting-service/config"
	"github.com/guttosm/slotting-service/internal/circuitbreaker"
	"github.com/guttosm/slotting-service/internal/metrics"
	"github.com/guttosm/slotting-service/internal/repository"
	"github.com/guttosm/slotting-service/internal/service"
)

// Breaker names as published to metrics and the readiness probe.
const (
	breakerCatalog = "mongodb_catalog"
	breakerRuns    = "mongodb_runs"
	breakerLogs    = "mongodb_logs"
	breakerUsers   = "mongodb_users"
)

// DatabaseComponents holds the MongoDB-backed repositories, each behind its own breaker.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	CatalogRepo    repository.CatalogRepositoryInterface
	RunsRepo       repository.RunsRepositoryInterface
	UserRepo       repository.UserRepositoryInterface
	LoggingService service.LoggingService
	Breakers       map[string]*circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the repositories.
// Returns nil if the database is disabled or unreachable; the service then runs
// on the static catalog without history, audit logs or user accounts.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}
	if err := db.SetRunsTTL(ctx, cfg.RunsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set runs TTL index")
	}

	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	breakers := map[string]*circuitbreaker.CircuitBreaker{
		breakerCatalog: newBreaker(cfg, breakerCatalog),
		breakerRuns:    newBreaker(cfg, breakerRuns),
		breakerLogs:    newBreaker(cfg, breakerLogs),
		breakerUsers:   newBreaker(cfg, breakerUsers),
	}

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), breakers[breakerLogs])

	return &DatabaseComponents{
		DB:             db,
		CatalogRepo:    repository.NewCatalogRepositoryWithCircuitBreaker(repository.NewCatalogRepository(db), breakers[breakerCatalog]),
		RunsRepo:       repository.NewRunsRepositoryWithCircuitBreaker(repository.NewRunsRepository(db), breakers[breakerRuns]),
		UserRepo:       repository.NewUserRepositoryWithCircuitBreaker(repository.NewUserRepository(db), breakers[breakerUsers]),
		LoggingService: service.NewLoggingService(logsRepo),
		Breakers:       breakers,
	}
}

// newBreaker builds a breaker that ignores not-found and duplicate errors and
// publishes every transition as a gauge.
func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsExpected:       repository.IsExpected,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}

// Close disconnects from MongoDB. It is safe on a nil receiver.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
