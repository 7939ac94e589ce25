package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/microblog/platform/internal/api/handler"
	"github.com/microblog/platform/internal/core/service"
	"github.com/microblog/platform/internal/infrastructure/config"
	mongostore "github.com/microblog/platform/internal/infrastructure/db/mongo"
	healthhandlers "github.com/microblog/platform/internal/infrastructure/http/handlers"
)

// NewAuthRouter builds the Echo instance for the auth service: token
// issuance plus the public identity read surface.
func NewAuthRouter(db *mongo.Database, cfg *config.AuthConfig, log zerolog.Logger) *echo.Echo {
	e := newEcho("auth", log)

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)

	// --- Auth routes (public by design) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Identity read surface consumed by sibling services ---
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)

	registerProbes(e, db)
	return e
}

// newEcho builds an Echo instance with the middleware and plumbing every
// service shares: recovery, request ids, request logging, Prometheus
// request metrics, the request validator, and the central error handler.
func newEcho(serviceName string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(serviceName))

	e.GET("/metrics", echoprometheus.NewHandler())
	return e
}

// registerProbes wires the health endpoints shared by all services.
func registerProbes(e *echo.Echo, db *mongo.Database) {
	e.GET("/health", healthhandlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", healthhandlers.NewHealthDependenciesHandler(db).Readiness)
}
