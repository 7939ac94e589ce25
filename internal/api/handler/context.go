package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/api/middleware"
	"github.com/microblog/platform/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and
// fast-fails before any service call when the middleware did not run.
// Presence of claims proves the request was authenticated.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
