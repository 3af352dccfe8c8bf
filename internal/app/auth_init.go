package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/slotting-service/config"
	"github.com/guttosm/slotting-service/internal/service"
)

// Auth modes reported by the readiness probe.
const (
	authModeOpen    = "open"
	authModeAPIKeys = "api_keys"
	authModeJWT     = "jwt"
)

// InitializeAuth returns the JWT account service, or nil when accounts are unavailable.
// Accounts need AUTH_ENABLED and a database; API keys work without either.
func InitializeAuth(cfg config.AuthConfig, db *DatabaseComponents) service.AuthService {
	if !cfg.Enabled {
		return nil
	}
	if db == nil {
		log.Warn().Msg("AUTH_ENABLED requires MongoDB for user accounts - only API keys will be accepted")
		return nil
	}
	return service.NewAuthService(db.UserRepo, cfg)
}

// authMode describes which credentials the router accepts.
func authMode(authService service.AuthService, apiKeys map[string]bool) string {
	switch {
	case authService != nil:
		return authModeJWT
	case len(apiKeys) > 0:
		return authModeAPIKeys
	default:
		return authModeOpen
	}
}
