package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

func newTestTokenService() *TokenServiceImpl {
	return NewTokenService(TokenConfig{
		SecretKey:        "access-secret",
		RefreshSecretKey: "refresh-secret",
		AccessTokenTTL:   time.Minute,
		RefreshTokenTTL:  time.Hour,
	})
}

func TestTokenService_GenerateTokenPair(t *testing.T) {
	svc := newTestTokenService()
	user := &model.User{ID: primitive.NewObjectID(), Email: "a@b.c", Roles: []string{model.RolePlanner}}

	pair, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.Equal(t, int64(60), pair.ExpiresIn)

	access, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, access.UserID)
	assert.Equal(t, user.Roles, access.Roles)

	refresh, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refresh.UserID)
}

func TestTokenService_GenerateTokenPair_ZeroID(t *testing.T) {
	_, err := newTestTokenService().GenerateTokenPair(&model.User{})
	assert.Error(t, err)

	_, err = newTestTokenService().GenerateTokenPair(nil)
	assert.Error(t, err)
}

func TestTokenService_RejectsSwappedTokens(t *testing.T) {
	svc := newTestTokenService()
	pair, err := svc.GenerateTokenPair(&model.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Expiry(t *testing.T) {
	svc := newTestTokenService()
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	pair, err := svc.GenerateTokenPair(&model.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(30 * time.Second) }
	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err, "refresh token outlives the access token")
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	svc := newTestTokenService()

	tests := []struct {
		name   string
		method jwt.SigningMethod
		key    any
		claims ClaimsWithJWT
	}{
		{
			name:   "wrong key",
			method: jwt.SigningMethodHS256,
			key:    []byte("other-secret"),
			claims: ClaimsWithJWT{TokenType: tokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer}},
		},
		{
			name:   "wrong issuer",
			method: jwt.SigningMethodHS256,
			key:    []byte("access-secret"),
			claims: ClaimsWithJWT{TokenType: tokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else"}},
		},
		{
			name:   "unsigned",
			method: jwt.SigningMethodNone,
			key:    jwt.UnsafeAllowNoneSignatureType,
			claims: ClaimsWithJWT{TokenType: tokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(tt.method, &tt.claims).SignedString(tt.key)
			require.NoError(t, err)

			_, err = svc.ValidateAccessToken(signed)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
