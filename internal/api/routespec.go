package api

import (
	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/api/middleware"
)

// routeSpec declares the access requirements of one operation. Routes
// are gated from these declarative specs rather than ad-hoc middleware
// closures, so the ordering rule — authentication always precedes
// authorization — is enforced in one place.
type routeSpec struct {
	Authenticate bool
	AllowedRoles []string
}

// guard builds the ordered middleware chain for the spec. An empty role
// list with Authenticate set means any authenticated caller; the zero
// spec yields no middleware at all (fully public route).
func (r routeSpec) guard(jwtSecret string) []echo.MiddlewareFunc {
	var mws []echo.MiddlewareFunc
	if r.Authenticate {
		mws = append(mws, middleware.Auth(jwtSecret))
	}
	if len(r.AllowedRoles) > 0 {
		mws = append(mws, middleware.RBAC(r.AllowedRoles...))
	}
	return mws
}
