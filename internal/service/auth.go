package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/slotting-service/config"
	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/repository"
)

// AuthService provides operator authentication and role management.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	UpdateRoles(ctx context.Context, userID primitive.ObjectID, roles []string) (*model.User, error)
	DeactivateUser(ctx context.Context, userID primitive.ObjectID) error
}

// AuthServiceImpl implements AuthService.
// It handles user authentication and delegates token operations to TokenService.
type AuthServiceImpl struct {
	userRepo     repository.UserRepositoryInterface
	tokenService TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepositoryInterface, authConfig config.AuthConfig) *AuthServiceImpl {
	return NewAuthServiceWithTokenService(userRepo, NewTokenService(NewTokenConfigFromAuthConfig(authConfig)))
}

// NewAuthServiceWithTokenService creates a new authentication service with an existing TokenService.
func NewAuthServiceWithTokenService(userRepo repository.UserRepositoryInterface, tokenService TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Login authenticates a user and returns JWT tokens.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || !user.Active {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token pair: %w", err)
	}
	return tokenPair, user, nil
}

// Register creates a viewer account. The first account ever registered is made admin.
func (s *AuthServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenPair, *model.User, error) {
	email := normalizeEmail(req.Email)
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrUserExists
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, nil, err
	}
	role := model.RoleViewer
	if count == 0 {
		role = model.RoleAdmin
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Email:    email,
		Username: strings.TrimSpace(req.Username),
		Password: string(hashedPassword),
		Name:     strings.TrimSpace(req.Name),
		Roles:    []string{role},
		Active:   true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, nil, ErrUserExists
		}
		return nil, nil, err
	}
	if role == model.RoleAdmin {
		log.Info().Str("email", email).Msg("first user registered as admin")
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return tokenPair, user, nil
}

// RefreshToken issues a new pair for a valid refresh token of an active user.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}

	return s.tokenService.GenerateTokenPair(user)
}

// ValidateToken validates an access token.
func (s *AuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	return s.tokenService.ValidateAccessToken(tokenString)
}

// UpdateRoles replaces the roles of a user and returns the updated user.
func (s *AuthServiceImpl) UpdateRoles(ctx context.Context, userID primitive.ObjectID, roles []string) (*model.User, error) {
	for _, r := range roles {
		if !model.ValidRole(r) {
			return nil, &dto.ValidationError{Field: "roles", Message: "unknown role " + r}
		}
	}

	if err := s.userRepo.UpdateRoles(ctx, userID, roles); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeactivateUser blocks further logins and refreshes for a user.
// Access tokens already issued stay valid until they expire.
func (s *AuthServiceImpl) DeactivateUser(ctx context.Context, userID primitive.ObjectID) error {
	err := s.userRepo.Deactivate(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ AuthService = (*AuthServiceImpl)(nil)
