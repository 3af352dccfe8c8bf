// Package app wires configuration, storage, services and the HTTP router together.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/slotting-service/config"
	"github.com/guttosm/slotting-service/internal/http"
)

// App is the initialized service.
type App struct {
	Router   *http.Router
	db       *DatabaseComponents
	services *ServiceComponents
	routing  *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Logging)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	db := InitializeDatabase(cfg.Database)

	services, err := InitializeServices(cfg, db)
	if err != nil {
		_ = db.Close(context.Background())
		return nil, err
	}

	routing := InitializeRouter(services, db, cfg)
	router := http.NewRouter(routing.Handler, routing.HealthHandler, routing.Config)

	return &App{
		Router:   router,
		db:       db,
		services: services,
		routing:  routing,
	}, nil
}

// Close flushes the audit log and releases every background resource.
func (a *App) Close(ctx context.Context) error {
	a.Router.Close()
	a.routing.AuditLogger.Stop()
	if a.routing.Idempotency != nil {
		a.routing.Idempotency.Stop()
	}
	a.services.Stop()

	if err := a.db.Close(ctx); err != nil {
		return fmt.Errorf("close mongodb: %w", err)
	}
	log.Info().Msg("Application resources released")
	return nil
}
