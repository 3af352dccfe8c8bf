package dto

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate an operator
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"planner@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// RegisterRequest represents the JSON request body for the register endpoint.
//
// @Description Request to register a new operator
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"planner@example.com"`
	Username string `json:"username" binding:"required,min=3,max=30" example:"planner"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Name     string `json:"name,omitempty" example:"Floor Planner"`
} // @name RegisterRequest

// UpdateRolesRequest replaces the roles of a user.
//
// @Description Roles granted to a user
type UpdateRolesRequest struct {
	Roles []string `json:"roles" binding:"required,min=1" example:"planner"`
} // @name UpdateRolesRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with JWT tokens
type LoginResponse struct {
	Token        string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string       `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn    int64        `json:"expires_in" example:"900"`
	User         UserResponse `json:"user"`
} // @name LoginResponse

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Claims are the identity fields carried by an access token.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
	Roles  []string           `json:"roles"`
}

// HasRole checks whether the claims grant required or a stronger role.
func (c *Claims) HasRole(required string) bool {
	return model.RoleSatisfies(c.Roles, required)
}

// UserResponse represents user information in API responses.
type UserResponse struct {
	ID       string   `json:"id" example:"65b6a1f2c3d4e5f6a7b8c9d0"`
	Email    string   `json:"email" example:"planner@example.com"`
	Username string   `json:"username" example:"planner"`
	Name     string   `json:"name,omitempty" example:"Floor Planner"`
	Roles    []string `json:"roles" example:"planner"`
} // @name UserResponse

// NewUserResponse converts a user to its API form.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:       u.ID.Hex(),
		Email:    u.Email,
		Username: u.Username,
		Name:     u.Name,
		Roles:    u.Roles,
	}
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

// Validate performs custom validation on the register request.
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	username := strings.TrimSpace(r.Username)
	if username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if len(username) < 3 {
		return &ValidationError{Field: "username", Message: "username must be at least 3 characters"}
	}
	if len(username) > 30 {
		return &ValidationError{Field: "username", Message: "username must be at most 30 characters"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

// Validate checks that every role is known.
func (r *UpdateRolesRequest) Validate() error {
	if len(r.Roles) == 0 {
		return &ValidationError{Field: "roles", Message: "at least one role is required"}
	}
	for _, role := range r.Roles {
		if !model.ValidRole(role) {
			return &ValidationError{Field: "roles", Message: "unknown role " + role}
		}
	}
	return nil
}
