package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realtyhub/marketplace-api/internal/api/metrics"
	"github.com/realtyhub/marketplace-api/internal/api/middleware"
	"github.com/realtyhub/marketplace-api/internal/core/domain"
	"github.com/realtyhub/marketplace-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new customer account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{User: toUserResponse(user)})
}

// Login authenticates a user and returns a JWT token plus the role's visible
// pages. Rejections carry a machine-readable reason code.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  loginFailureResponse
// @Failure      429   {object}  loginFailureResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if status, reason, ok := loginRejection(err); ok {
			metrics.LoginsTotal.WithLabelValues(string(reason)).Inc()
			return c.JSON(status, loginFailureResponse{
				Success: false,
				Reason:  string(reason),
				Message: err.Error(),
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   result.Token,
		User:    toUserResponse(result.User),
		Pages:   result.Pages,
	})
}

// Me returns the resolved principal for the presented token.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := principalOrError(c)
	if err != nil {
		return err
	}

	resp := meResponse{
		ID:          p.UserID,
		Email:       p.Email,
		Role:        p.Role,
		Permissions: p.Permissions,
		Pages:       p.Pages(),
		AdminTier:   p.IsAdminTier(),
	}
	if p.RoleObject != nil {
		resp.Level = p.RoleObject.Level
	}
	return c.JSON(http.StatusOK, resp)
}

// loginRejection maps the login flow's domain errors to an HTTP status and
// reason code. Anything unmatched falls through to the central error handler.
func loginRejection(err error) (int, ports.LoginReason, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ports.ReasonInvalidCredentials, true
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusUnauthorized, ports.ReasonAccountInactive, true
	case errors.Is(err, domain.ErrRoleDeleted):
		return http.StatusUnauthorized, ports.ReasonRoleDeleted, true
	case errors.Is(err, domain.ErrRoleInactive):
		return http.StatusUnauthorized, ports.ReasonRoleInactive, true
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, ports.ReasonRateLimited, true
	}
	return 0, "", false
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: string(u.Status),
	}
}

// principalOrError extracts the principal injected by the auth middleware.
// Its absence means the route was wired without Authenticate; fail closed.
func principalOrError(c echo.Context) (*domain.Principal, error) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
