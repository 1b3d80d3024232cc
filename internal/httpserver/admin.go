package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/omashasarra/hasbani-backend/internal/logging"
	"github.com/omashasarra/hasbani-backend/internal/repo"
	"github.com/omashasarra/hasbani-backend/internal/service"
	"github.com/omashasarra/hasbani-backend/internal/transport"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

// ListAdmins never exposes password hashes; the model keeps them out of the
// JSON encoding.
func (h *AdminHTTP) ListAdmins(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.list")

	admins, err := h.Svc.ListAdmins(ctx)
	if err != nil {
		l.Error("list_admins_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, admins)
}

func (h *AdminHTTP) CreateAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create")

	var req transport.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_admin_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "email, password and role are required")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("create_admin_error", "status", 400, "reason", "missing fields")
		return echo.NewHTTPError(http.StatusBadRequest, "email, password and role are required")
	}

	id, err := h.Svc.CreateAdmin(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrEmailTaken):
			l.Warn("create_admin_error", "status", 409)
			return echo.NewHTTPError(http.StatusConflict, "email already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_admin_error", "status", 400, "reason", "invalid role")
			return echo.NewHTTPError(http.StatusBadRequest, "role must be admin or superadmin")
		default:
			l.Error("create_admin_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	l.Info("create_admin_success", "admin_id", id)
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Admin created",
		"id":      id,
	})
}

func (h *AdminHTTP) DeleteAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("delete_admin_error", "status", 400, "reason", "id not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.DeleteAdmin(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_admin_error", "status", 404)
			return echo.NewHTTPError(http.StatusNotFound, "admin not found")
		}
		l.Error("delete_admin_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("delete_admin_success", "admin_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "Admin deleted"})
}
