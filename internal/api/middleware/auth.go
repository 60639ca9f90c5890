package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
	"github.com/realtyhub/marketplace-api/internal/core/ports"
)

// principalKey is the echo context key the resolved principal is stored under.
const principalKey = "principal"

// Authenticate extracts the bearer token and resolves the request principal,
// re-fetching the user and role documents on every request. Any failure is a
// generic 401; the response never says which sub-condition failed.
func Authenticate(resolver ports.PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal set by Authenticate, or nil when the
// middleware did not run.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}
