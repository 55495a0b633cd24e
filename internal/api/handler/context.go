package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/api/middleware"
	"github.com/inkwell/blog-api/internal/core/domain"
)

// ctxIdentity extracts the verified identity injected by the Auth
// middleware. A missing identity means the route was wired without the
// middleware; fail closed with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || identity.UserID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}
	return identity, nil
}
