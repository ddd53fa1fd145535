package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusops/student-registry/internal/core/domain"
)

// RequireAdmin enforces role-based access control on an already-authenticated
// request. It must be registered after Auth; a non-admin role is rejected
// with 403 before any handler logic runs.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.Role(role).IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}
			return next(c)
		}
	}
}
