// Package gateway implements the public entry point of the platform: a
// reverse proxy that forwards whole path prefixes to the service owning
// them. The gateway adds no business logic; headers, bodies, and status
// codes pass through untouched, so each service enforces its own access
// policy.
package gateway

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/microblog/platform/internal/infrastructure/config"
)

// NewRouter builds the proxy. Each prefix owns everything under it; an
// unmatched prefix is a plain 404 from the gateway itself.
func NewRouter(cfg *config.GatewayConfig, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	routes := map[string]string{
		"/auth":     cfg.AuthServiceURL,
		"/users":    cfg.AuthServiceURL,
		"/posts":    cfg.PostServiceURL,
		"/comments": cfg.CommentServiceURL,
	}

	for prefix, target := range routes {
		targetURL, err := url.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("gateway: invalid upstream url %q: %w", target, err)
		}
		g := e.Group(prefix)
		g.Use(echomiddleware.Proxy(echomiddleware.NewRoundRobinBalancer([]*echomiddleware.ProxyTarget{
			{URL: targetURL},
		})))
		log.Info().Str("prefix", prefix).Str("upstream", target).Msg("gateway route registered")
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e, nil
}
