package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/slotting-service/config"
	"github.com/guttosm/slotting-service/internal/catalog"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/service"
	"github.com/guttosm/slotting-service/internal/service/cache"
)

// Catalog sources reported by the readiness probe.
const (
	catalogSourceDefaults = "defaults"
	catalogSourceFile     = "file"
	catalogSourceMongoDB  = "mongodb"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Catalog       service.CatalogService
	CatalogSource string
	Optimizer     *service.OptimizerService
	Runs          service.RunsService
	Auth          service.AuthService
	Logging       service.LoggingService
	ResultCache   *cache.Sharded[*model.OptimizationReport]
}

// InitializeServices builds the catalog, optimizer and history services.
// db may be nil.
func InitializeServices(cfg config.Config, db *DatabaseComponents) (*ServiceComponents, error) {
	base, source, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	components := &ServiceComponents{CatalogSource: source}

	if db != nil {
		stored := service.NewStoredCatalogService(db.CatalogRepo)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stored.Seed(ctx, base); err != nil {
			log.Warn().Err(err).Msg("Failed to seed catalog")
		}
		components.Catalog = stored
		components.CatalogSource = catalogSourceMongoDB
		components.Runs = service.NewRunsService(db.RunsRepo)
		components.Logging = db.LoggingService
	} else {
		components.Catalog = service.NewStaticCatalogService(base)
	}
	components.Auth = InitializeAuth(cfg.Auth, db)

	opts := []service.OptimizerOption{
		service.WithOracleTimeout(cfg.Optimizer.OracleTimeout),
		service.WithWorkers(cfg.Optimizer.TrialWorkers, cfg.Optimizer.SKUWorkers),
		service.WithMaxSKUs(cfg.Optimizer.MaxSKUs),
	}
	if cfg.Cache.Size > 0 {
		components.ResultCache = cache.NewSharded[*model.OptimizationReport](cfg.Cache.Size, cfg.Cache.TTL, 0)
		opts = append(opts, service.WithResultCache(components.ResultCache))
	}
	if components.Runs != nil {
		opts = append(opts, service.WithRunRecorder(components.Runs))
	}
	components.Optimizer = service.NewOptimizerService(components.Catalog, opts...)

	log.Info().
		Str("catalog", components.CatalogSource).
		Bool("result_cache", components.ResultCache != nil).
		Bool("history", components.Runs != nil).
		Msg("Services initialized")
	return components, nil
}

// loadCatalog reads CATALOG_FILE, falling back to the built-in defaults.
func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, string, error) {
	if cfg.File == "" {
		return catalog.Default(), catalogSourceDefaults, nil
	}
	c, err := catalog.LoadFile(cfg.File)
	if err != nil {
		return nil, "", fmt.Errorf("load catalog %s: %w", cfg.File, err)
	}
	return c, catalogSourceFile, nil
}

// Stop releases the cache janitors.
func (s *ServiceComponents) Stop() {
	if s != nil && s.ResultCache != nil {
		s.ResultCache.Stop()
	}
}
