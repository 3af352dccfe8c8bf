package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// APIKeyRole is granted to callers that authenticate with an API key.
	APIKeyRole = model.RolePlanner
)

// TokenValidator validates bearer access tokens.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*dto.Claims, error)
}

// Authenticate accepts either an API key (header, then query parameter) or a bearer
// access token and attaches the caller's claims to the context. A nil validator
// disables bearer tokens; an empty key set disables API keys.
func Authenticate(tokens TokenValidator, apiKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}
		if key != "" && len(apiKeys) > 0 {
			if !apiKeys[key] {
				abort(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidAPIKey)
				return
			}
			setClaims(c, &dto.Claims{Name: "api-key", Roles: []string{APIKeyRole}})
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || tokens == nil {
			missing := i18n.ErrKeyTokenRequired
			if tokens == nil {
				missing = i18n.ErrKeyAPIKeyRequired
			}
			abort(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, missing)
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abort(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}
		if token = strings.TrimSpace(token); token == "" {
			abort(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.ValidateToken(c.Request.Context(), token)
		if err != nil || claims == nil {
			abort(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
