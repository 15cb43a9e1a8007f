package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoles enforces the per-route access policy against the identity
// attached by the Identity middleware: no identity yields 401, an identity
// whose role is outside the allowed set yields 403. With no roles given,
// any authenticated person may proceed.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			person, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if len(allowed) > 0 {
				if _, ok := allowed[person.Role]; !ok {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
			}
			return next(c)
		}
	}
}

// RequireAuth admits any authenticated person regardless of role.
func RequireAuth() echo.MiddlewareFunc {
	return RequireRoles()
}
