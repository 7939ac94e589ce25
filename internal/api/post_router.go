package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/microblog/platform/internal/api/handler"
	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
	"github.com/microblog/platform/internal/core/service"
	"github.com/microblog/platform/internal/infrastructure/config"
	mongostore "github.com/microblog/platform/internal/infrastructure/db/mongo"
)

// NewPostRouter builds the Echo instance for the post service. Write
// access is gated by the access guard; single-post reads, updates and
// deletes are public per the platform contract.
func NewPostRouter(db *mongo.Database, users ports.UserDirectory, cfg *config.PostConfig, log zerolog.Logger) *echo.Echo {
	e := newEcho("post", log)

	// --- Dependencies ---
	postRepo := mongostore.NewPostRepository(db)
	postService := service.NewPostService(postRepo, users, log)
	postHandler := handler.NewPostHandler(postService)

	// --- Post routes, gated per operation ---
	createSpec := routeSpec{Authenticate: true, AllowedRoles: []string{domain.RoleUser, domain.RoleAdmin}}
	listSpec := routeSpec{Authenticate: true, AllowedRoles: []string{domain.RoleAdmin}}
	publicSpec := routeSpec{}

	e.POST("/posts", postHandler.Create, createSpec.guard(cfg.JWTSecret)...)
	e.GET("/posts", postHandler.List, listSpec.guard(cfg.JWTSecret)...)
	e.GET("/posts/:id", postHandler.Get, publicSpec.guard(cfg.JWTSecret)...)
	e.PUT("/posts/:id", postHandler.Update, publicSpec.guard(cfg.JWTSecret)...)
	e.DELETE("/posts/:id", postHandler.Delete, publicSpec.guard(cfg.JWTSecret)...)

	registerProbes(e, db)
	return e
}
