package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusops/student-registry/internal/core/domain"
	"github.com/campusops/student-registry/internal/core/ports"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role proves
// the middleware ran.
func ctxClaims(c echo.Context) (ports.Claims, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	sub, _ := c.Get("sub").(int64)
	username, _ := c.Get("username").(string)

	return ports.Claims{
		Sub:      sub,
		Username: username,
		Role:     domain.Role(role),
	}, nil
}
