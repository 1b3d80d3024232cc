package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omashasarra/hasbani-backend/internal/logging"
	"github.com/omashasarra/hasbani-backend/internal/service"
	"github.com/omashasarra/hasbani-backend/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "missing fields")
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		// Same status and message for unknown email and wrong password.
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrValidation) {
			l.Warn("login_failed", "status", 400)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid credentials")
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	l.Info("login_success")
	return c.JSON(http.StatusOK, res)
}
