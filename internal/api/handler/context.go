package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/plants-api/internal/api/middleware"
	"github.com/greenhouse/plants-api/internal/core/domain"
)

// actor extracts the Principal resolved by the auth middleware. Handlers on
// protected routes call it before any service call; a missing Principal
// means the middleware chain was miswired, and the request fails closed.
func actor(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
