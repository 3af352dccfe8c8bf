// Package middleware provides the gin middleware of the slotting API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/i18n"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// Keys stored on the gin context.
const (
	RequestIDKey = "request_id"
	ClaimsKey    = "user_claims"
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// RequestID assigns each request an id, reusing X-Request-ID when the client sends one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// GetClaims returns the identity attached by Authenticate.
func GetClaims(c *gin.Context) (*dto.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*dto.Claims)
	return claims, ok && claims != nil
}

// GetUserID returns the hex id of the authenticated user, or "" for anonymous and
// API key callers.
func GetUserID(c *gin.Context) string {
	if id, ok := c.Get(UserIDKey); ok {
		if oid, ok := id.(primitive.ObjectID); ok && !oid.IsZero() {
			return oid.Hex()
		}
	}
	return ""
}

func setClaims(c *gin.Context, claims *dto.Claims) {
	c.Set(ClaimsKey, claims)
	c.Set(UserIDKey, claims.UserID)
	c.Set(UserEmailKey, claims.Email)
}

// abort stops the chain with a translated error body.
func abort(c *gin.Context, status int, code, key string) {
	resp := dto.NewError(code, i18n.Message(c, key)).WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(status, resp)
}
