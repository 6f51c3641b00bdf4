package handler

import (
	"net/http"

	"budget/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness checks. It does not touch the database.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{"ok": true})
}
