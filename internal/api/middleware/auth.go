package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/plants-api/internal/api/metrics"
	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/ports"
)

// TokenCookieName is the cookie carrying the credential on the browser
// channel. Set on signup/login, cleared on logout.
const TokenCookieName = "jwt"

// principalKey is the context key under which the resolved Principal is
// memoized for the rest of the request. Request-scoped by construction:
// echo.Context values never leak across requests.
const principalKey = "principal"

// Principal returns the identity resolved for this request, if any. A false
// second return means the caller is anonymous.
func Principal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

// SetPrincipal attaches p to the request context. Exported for tests.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

// ResolveBearer resolves the Principal from an Authorization: Bearer header.
// A missing or untrusted token leaves the request anonymous rather than
// failing it; RequireAuth decides whether anonymity is acceptable. The
// result is memoized, so stacking resolvers never parses twice.
func ResolveBearer(tokens ports.TokenService) echo.MiddlewareFunc {
	return resolver(func(c echo.Context) string {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return ""
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return ""
		}
		return parts[1]
	}, tokens)
}

// ResolveCookie resolves the Principal from the credential cookie. This is
// the browser channel; it is a separate middleware from ResolveBearer, and
// a route authenticates over one channel, never both.
func ResolveCookie(tokens ports.TokenService) echo.MiddlewareFunc {
	return resolver(func(c echo.Context) string {
		cookie, err := c.Cookie(TokenCookieName)
		if err != nil {
			return ""
		}
		return cookie.Value
	}, tokens)
}

func resolver(extract func(echo.Context) string, tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := Principal(c); ok {
				return next(c)
			}

			token := extract(c)
			if token == "" {
				return next(c)
			}

			p, err := tokens.Parse(token)
			if err != nil {
				// Untrusted token degrades to anonymous, never to a crash.
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return next(c)
			}

			c.Set(principalKey, *p)
			return next(c)
		}
	}
}

// RequireAuth stops anonymous requests with 401. It must run after a
// resolver and before any role check, so role checks never see a missing
// Principal.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := Principal(c); !ok {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
