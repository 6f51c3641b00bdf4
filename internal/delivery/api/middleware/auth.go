package middleware

import (
	"strings"

	"budget/internal/delivery/api/response"
	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/constants"
	"budget/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware resolves the caller from the access token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate reads a Bearer header, falling back to the accessToken cookie.
// Missing token is 401; a token that fails validation is 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.authUC.Authenticate(c.Request().Context(), accessTokenFrom(c))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// GetUserID returns the caller set by Authenticate.
func GetUserID(c echo.Context) (int64, bool) {
	return deliverycontext.GetUserID(c)
}

func accessTokenFrom(c echo.Context) string {
	const bearerPrefix = "Bearer "

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}
