package handler

import (
	"net/http"
	"time"

	"budget/config"
	"budget/internal/domain/constants"
	"budget/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// sessionCookies writes and clears the access and refresh cookies.
type sessionCookies struct {
	secure bool
}

func newSessionCookies(cfg *config.Config) sessionCookies {
	return sessionCookies{secure: !cfg.Auth.CookieInsecure}
}

// sameSite is None for the cross-site client; browsers only accept None on
// Secure cookies, so plain-HTTP development falls back to Lax.
func (s sessionCookies) sameSite() http.SameSite {
	if s.secure {
		return http.SameSiteNoneMode
	}

	return http.SameSiteLaxMode
}

func (s sessionCookies) set(c echo.Context, session *entity.IssuedSession) {
	c.SetCookie(s.cookie(constants.AccessTokenCookie, session.AccessToken, "/", session.AccessTokenTTL))
	c.SetCookie(s.cookie(constants.RefreshTokenCookie, session.RefreshToken, constants.RefreshCookiePath, session.RefreshTokenTTL))
}

func (s sessionCookies) clearRefresh(c echo.Context) {
	c.SetCookie(s.expired(constants.RefreshTokenCookie, constants.RefreshCookiePath))
}

func (s sessionCookies) clearAll(c echo.Context) {
	s.clearRefresh(c)
	c.SetCookie(s.expired(constants.AccessTokenCookie, "/"))
}

func (s sessionCookies) cookie(name, value, path string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite(),
	}
}

func (s sessionCookies) expired(name, path string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite(),
	}
}

func refreshTokenFrom(c echo.Context) string {
	cookie, err := c.Cookie(constants.RefreshTokenCookie)
	if err != nil {
		return ""
	}

	return cookie.Value
}
