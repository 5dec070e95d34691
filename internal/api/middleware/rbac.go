package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/plants-api/internal/api/metrics"
	"github.com/greenhouse/plants-api/internal/core/domain"
)

// RequireRole enforces role-based access control. Roles match exactly: there
// is no hierarchy, so a route open to several roles must list them all.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := Principal(c)
			if !ok {
				// RequireAuth should have run first; treat a bare role check
				// as unauthenticated rather than comparing a missing role.
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[p.Role]; !ok {
				metrics.AuthFailuresTotal.WithLabelValues("role_mismatch").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
