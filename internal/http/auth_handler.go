package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/i18n"
	"github.com/guttosm/slotting-service/internal/middleware"
	"github.com/guttosm/slotting-service/internal/service"
)

// RefreshTokenHeader carries the refresh token on POST /auth/refresh.
const RefreshTokenHeader = "X-Refresh-Token"

// AuthHandler provides HTTP handlers for operator accounts.
type AuthHandler struct {
	authService service.AuthService
	audit       *middleware.AsyncLogger
}

// NewAuthHandler creates an authentication handler. audit may be nil.
func NewAuthHandler(authService service.AuthService, audit *middleware.AsyncLogger) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

func loginResponse(pair *dto.TokenPair, user *model.User) dto.LoginResponse {
	resp := dto.LoginResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
	if user != nil {
		resp.User = dto.NewUserResponse(user)
	}
	return resp
}

// Login handles POST /api/v1/auth/login.
//
// @Summary      Login
// @Description  Authenticates an operator and returns an access and a refresh token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	pair, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AuditLog(h.audit, c, model.ActionLogin, "login failed", err,
			map[string]any{"email": strings.ToLower(strings.TrimSpace(req.Email))})
		builder.Fail(err)
		return
	}

	c.Set(middleware.UserIDKey, user.ID)
	c.Set(middleware.UserEmailKey, user.Email)
	middleware.AuditLog(h.audit, c, model.ActionLogin, "operator logged in", nil, nil)
	builder.SuccessOK(loginResponse(pair, user))
}

// Register handles POST /api/v1/auth/register.
//
// @Summary      Register
// @Description  Creates an operator account. The first account becomes admin; later accounts start as viewer.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration information"
// @Success      201 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful registration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - user already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RegisterRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	pair, user, err := h.authService.Register(c.Request.Context(), *req)
	if err != nil {
		middleware.AuditLog(h.audit, c, model.ActionRegister, "registration failed", err,
			map[string]any{"email": strings.ToLower(strings.TrimSpace(req.Email))})
		builder.Fail(err)
		return
	}

	c.Set(middleware.UserIDKey, user.ID)
	c.Set(middleware.UserEmailKey, user.Email)
	middleware.AuditLog(h.audit, c, model.ActionRegister, "operator registered", nil,
		map[string]any{"roles": user.Roles})
	builder.SuccessCreated(loginResponse(pair, user))
}

// RefreshToken handles POST /api/v1/auth/refresh.
//
// @Summary      Refresh tokens
// @Description  Issues a new token pair from the refresh token in the X-Refresh-Token header. Roles are re-read from the account.
// @Tags         Auth
// @Produce      json
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "New tokens"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid refresh token"
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	refreshToken := strings.TrimSpace(c.GetHeader(RefreshTokenHeader))
	if refreshToken == "" {
		builder.ErrorWithDetails(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyTokenRequired,
			map[string]string{"header": RefreshTokenHeader}, nil)
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(loginResponse(pair, nil))
}

// Me handles GET /api/v1/auth/me.
//
// @Summary      Current identity
// @Tags         Auth
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.Claims} "Claims of the caller"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	builder := NewResponseBuilder(c)
	claims, ok := middleware.GetClaims(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	builder.SuccessOK(claims)
}

// UpdateRoles handles PUT /api/v1/users/:id/roles.
//
// @Summary      Replace a user's roles
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id path string true "User id"
// @Param        request body dto.UpdateRolesRequest true "Roles"
// @Success      200 {object} dto.SuccessResponse{data=dto.UserResponse} "Updated user"
// @Failure      400 {object} dto.ErrorResponse "Invalid id or role"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      404 {object} dto.ErrorResponse "User not found"
// @Security     BearerAuth
// @Router       /api/v1/users/{id}/roles [put]
func (h *AuthHandler) UpdateRoles(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{"field": "id"}, nil)
		return
	}
	req, err := BuildRequestAndValidate[dto.UpdateRolesRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	user, err := h.authService.UpdateRoles(c.Request.Context(), id, req.Roles)
	middleware.AuditLog(h.audit, c, model.ActionUpdateRoles, "user roles updated", err,
		map[string]any{"target_user": id.Hex(), "roles": req.Roles})
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(dto.NewUserResponse(user))
}

// DeactivateUser handles DELETE /api/v1/users/:id.
//
// @Summary      Deactivate a user
// @Description  Disables the account. Tokens already issued stay valid until they expire; refresh fails immediately.
// @Tags         Users
// @Param        id path string true "User id"
// @Success      204 "Deactivated"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      404 {object} dto.ErrorResponse "User not found"
// @Security     BearerAuth
// @Router       /api/v1/users/{id} [delete]
func (h *AuthHandler) DeactivateUser(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{"field": "id"}, nil)
		return
	}

	err = h.authService.DeactivateUser(c.Request.Context(), id)
	middleware.AuditLog(h.audit, c, model.ActionDeactivateUser, "user deactivated", err,
		map[string]any{"target_user": id.Hex()})
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.NoContent()
}
