package middleware

import (
	"strings"

	"budget/config"
	"budget/internal/delivery/api/response"
	domainerrors "budget/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// OriginGuard rejects cookie-authenticated state changes coming from other sites.
type OriginGuard struct {
	allowedOrigin string
}

// NewOriginGuard is the constructor for OriginGuard.
func NewOriginGuard(cfg *config.Config) *OriginGuard {
	return &OriginGuard{allowedOrigin: strings.TrimRight(cfg.Auth.AllowedOrigin, "/")}
}

// Check passes when Origin equals the allowed origin, when Referer is a page
// under it, or when both headers are absent. An empty allowed origin disables
// the check.
func (g *OriginGuard) Check(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if g.allowedOrigin == "" {
			return next(c)
		}

		if !g.sameOrigin(c.Request().Header.Get(echo.HeaderOrigin), c.Request().Referer()) {
			return response.AppError(c, domainerrors.ErrForbiddenOrigin)
		}

		return next(c)
	}
}

// sameOrigin compares whole origins: https://app.example.com.evil.com and
// https://app.example.com:8443 do not match https://app.example.com.
func (g *OriginGuard) sameOrigin(origin, referer string) bool {
	switch {
	case origin != "":
		return origin == g.allowedOrigin
	case referer != "":
		return referer == g.allowedOrigin || strings.HasPrefix(referer, g.allowedOrigin+"/")
	default:
		return true
	}
}
