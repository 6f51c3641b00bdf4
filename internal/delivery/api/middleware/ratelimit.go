package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"budget/config"
	"budget/internal/delivery/api/response"
	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	"budget/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerRateLimitLimit     = "RateLimit-Limit"
	headerRateLimitRemaining = "RateLimit-Remaining"
	headerRateLimitReset     = "RateLimit-Reset"
)

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Store  service.RateLimitStore
	Logger *slog.Logger
}

// RateLimiter builds fixed-window limiters over a shared counter store.
// A store outage lets requests through rather than locking everyone out.
type RateLimiter struct {
	store  service.RateLimitStore
	logger *slog.Logger
}

// NewRateLimiter is the constructor for RateLimiter.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	return &RateLimiter{store: params.Store, logger: params.Logger}
}

// ByIP counts every request per client IP.
func (l *RateLimiter) ByIP(name string, rule config.LimitRule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, _, err := l.hit(c, name+":ip:"+c.RealIP(), rule)
			if err != nil {
				return next(c)
			}
			if !allowed {
				return response.TooManyRequests(c)
			}

			return next(c)
		}
	}
}

// ByEmailFailures counts only failed attempts, keyed by the normalized email
// in the JSON body or by the client IP when the body carries none.
func (l *RateLimiter) ByEmailFailures(name string, rule config.LimitRule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := name + ":ip:" + c.RealIP()
			if email := peekEmail(c); email != "" {
				key = name + ":email:" + email
			}

			allowed, resetAt, err := l.hit(c, key, rule)
			if err != nil {
				return next(c)
			}
			if !allowed {
				return response.TooManyRequests(c)
			}

			handlerErr := next(c)
			if handlerErr == nil && c.Response().Status < http.StatusBadRequest {
				if err := l.store.Decrement(c.Request().Context(), key, resetAt); err != nil {
					l.log(c).Warn("Failed to forgive rate limit hit",
						slog.String("limiter", name),
						slog.Any("error", err),
					)
				}
			}

			return handlerErr
		}
	}
}

// hit counts one request and reports whether it is within the limit, plus the
// end of the window it was counted in.
func (l *RateLimiter) hit(c echo.Context, key string, rule config.LimitRule) (bool, time.Time, error) {
	count, resetAt, err := l.store.Increment(c.Request().Context(), key, rule.Window)
	if err != nil {
		l.log(c).Warn("Rate limit store unavailable", slog.Any("error", err))

		return true, time.Time{}, err
	}

	remaining := max(int64(rule.Limit)-count, 0)
	resetSeconds := int64(math.Ceil(time.Until(resetAt).Seconds()))

	header := c.Response().Header()
	header.Set(headerRateLimitLimit, strconv.Itoa(rule.Limit))
	header.Set(headerRateLimitRemaining, strconv.FormatInt(remaining, 10))
	header.Set(headerRateLimitReset, strconv.FormatInt(max(resetSeconds, 0), 10))

	return count <= int64(rule.Limit), resetAt, nil
}

func (l *RateLimiter) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), l.logger)
}

// peekEmail reads the email field and puts the body back for the handler.
func peekEmail(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}

	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return ""
	}

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return entity.NormalizeEmail(payload.Email)
}
