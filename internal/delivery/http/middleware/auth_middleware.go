package middleware

import (
	"strings"

	"todo/internal/delivery/http/response"
	"todo/internal/domain/entity"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the echo.Context key the authenticated account is stored under.
const KeyCurrentUser = "currentUser"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer token and resolves it to a registered
// account. The account is stored on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		user, err := m.authUsecase.CurrentUser(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(KeyCurrentUser, user)

		return next(c)
	}
}

// CurrentUser retrieves the account stored by Authenticate. It returns nil
// when the middleware did not run on this route.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(KeyCurrentUser).(*entity.User)

	return user
}
