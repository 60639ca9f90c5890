package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realtyhub/marketplace-api/internal/api/metrics"
	"github.com/realtyhub/marketplace-api/internal/core/domain"
)

// RequirePermission rejects requests whose principal lacks the permission
// token. The 403 names only the required permission, never the principal's
// actual permission set.
func RequirePermission(token string) echo.MiddlewareFunc {
	return guard("permission", "requires '"+token+"' permission", func(p *domain.Principal) bool {
		return p.HasPermission(token)
	})
}

// RequireAnyPermission passes when at least one of the tokens is granted.
func RequireAnyPermission(tokens ...string) echo.MiddlewareFunc {
	return guard("permission", "insufficient permissions", func(p *domain.Principal) bool {
		return p.HasAnyPermission(tokens...)
	})
}

// RequireAdmin passes admin and superadmin by name, or custom roles with
// level >= 8.
func RequireAdmin() echo.MiddlewareFunc {
	return guard("admin", "requires admin access", (*domain.Principal).IsAdmin)
}

// RequireSubAdmin passes subadmin, admin and superadmin by name, or custom
// roles with level >= 7.
func RequireSubAdmin() echo.MiddlewareFunc {
	return guard("subadmin", "requires subadmin access", (*domain.Principal).IsSubAdmin)
}

// RequireAdminTier passes any principal the deny-list classification treats
// as administrative (everything except customer, agent, vendor, builder).
func RequireAdminTier() echo.MiddlewareFunc {
	return guard("admin", "requires administrative access", (*domain.Principal).IsAdminTier)
}

// guard wraps a pure predicate over the principal: 401 when no principal was
// resolved, 403 when it fails the check. The predicate never mutates; this
// translation is the only side effect.
func guard(name, denial string, allowed func(*domain.Principal) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFrom(c)
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !allowed(p) {
				metrics.AuthzDeniedTotal.WithLabelValues(name).Inc()
				return echo.NewHTTPError(http.StatusForbidden, denial)
			}
			return next(c)
		}
	}
}
