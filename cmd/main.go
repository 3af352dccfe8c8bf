// Package main is the entry point for the slotting-service application.
//
// @title           Slotting Service API
// @version         1.0.0
// @description     API for finding how many units of a SKU fit on a pallet in a storage location.
//
//	The optimizer tries every axis-aligned orientation of the SKU, picks the one that stores
//	the most units and reports the resulting layer plan.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/slotting-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for service-to-service calls. Grants the planner role.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token as "Bearer <token>".
//
// @tag.name        Optimization
// @tag.description Orientation search and layer plans
//
// @tag.name        Catalog
// @tag.description Storage locations and pallet types
//
// @tag.name        Runs
// @tag.description Optimization history
//
// @tag.name        Auth
// @tag.description Authentication and user administration
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/slotting-service/config"
	_ "github.com/guttosm/slotting-service/docs" // swagger docs
	"github.com/guttosm/slotting-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := app.NewServer(application.Router, cfg.Server)
	runErr := server.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
