package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/omashasarra/hasbani-backend/internal/models"
	"github.com/omashasarra/hasbani-backend/internal/tokens"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxAdminID = "admin_id"
	CtxRole    = "role"
)

type AuthMiddleware struct {
	Secret []byte
}

func NewAuthMiddleware(secret []byte) *AuthMiddleware {
	return &AuthMiddleware{Secret: secret}
}

// RequireAuth validates the bearer token from the Authorization header and
// attaches the decoded admin id and role to the request context. Missing,
// invalid and expired tokens all stop the request with 401.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}

		claims, err := tokens.Parse(raw, m.Secret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.Set(CtxAdminID, claims.AdminID)
		c.Set(CtxRole, claims.Role)
		return next(c)
	}
}

// RequireSuperadmin gates a route on the superadmin role. It assumes
// RequireAuth already ran and stored the role in the context; the two are
// composed independently per route.
func (m *AuthMiddleware) RequireSuperadmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get(CtxRole).(models.Role)
		if !ok || role != models.RoleSuperadmin {
			return echo.NewHTTPError(http.StatusForbidden, "superadmin only")
		}
		return next(c)
	}
}
