package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/plants-api/internal/api/metrics"
)

// RequireGuest stops already-authenticated callers with 403. Used on signup
// and login so a valid session cannot mint a second identity mid-flight.
func RequireGuest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := Principal(c); ok {
				metrics.AuthFailuresTotal.WithLabelValues("already_authenticated").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "already authenticated")
			}
			return next(c)
		}
	}
}
