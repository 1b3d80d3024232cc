package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHTTP struct {
	Database    string
	Environment string
}

func (h *HealthHTTP) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"database":    h.Database,
		"environment": h.Environment,
	})
}
