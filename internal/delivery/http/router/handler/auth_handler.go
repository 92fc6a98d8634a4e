package handler

import (
	"log/slog"
	"net/http"

	"todo/internal/delivery/http/middleware"
	"todo/internal/delivery/http/response"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// CredentialsRequest is the payload for registration and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse is the public view of a newly created account.
type RegisterResponse struct {
	Username string `json:"username"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// WhoamiResponse identifies the account the presented token belongs to.
type WhoamiResponse struct {
	Username string `json:"username"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The hash never leaves the server.
	return response.Success(c, http.StatusCreated, RegisterResponse{Username: output.Username}, "User registered successfully")
}

// Login handles the login request and issues a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   output.ExpiresIn,
	}, "Login successful")
}

// Whoami returns the account the bearer token resolves to. The auth
// middleware has already validated the token and loaded the account.
func (h *AuthHandler) Whoami(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	return response.Success(c, http.StatusOK, WhoamiResponse{Username: user.Username}, "Profile retrieved successfully")
}
