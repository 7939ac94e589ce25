package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/domain"
)

// claimsKey is the echo context key under which Auth stores the decoded
// token claims.
const claimsKey = "claims"

// Auth is the authentication stage of the access guard. It reads the
// bearer credential from the Authorization header, verifies signature
// and expiry against the process-wide secret, and injects the decoded
// claims into the request context. A missing header is 401; a malformed,
// badly signed, or expired token is 403.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			claims := &domain.Claims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims attached by Auth, or nil when the
// middleware did not run on this request.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(claimsKey).(*domain.Claims)
	return claims
}
