package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC is the authorization stage of the access guard. An empty
// allow-list is a pass-through. With a non-empty list, a request without
// attached claims is rejected rather than crashing, so the middleware is
// safe even when composed without Auth in front of it.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden: insufficient role")
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden: insufficient role")
			}
			return next(c)
		}
	}
}
