package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/microblog/platform/internal/api/handler"
	"github.com/microblog/platform/internal/core/ports"
	"github.com/microblog/platform/internal/core/service"
	mongostore "github.com/microblog/platform/internal/infrastructure/db/mongo"
)

// NewCommentRouter builds the Echo instance for the comment service.
// Comment routes are public; the strict reference check on creation is
// their only gate.
func NewCommentRouter(db *mongo.Database, users ports.UserDirectory, posts ports.PostDirectory, log zerolog.Logger) *echo.Echo {
	e := newEcho("comment", log)

	// --- Dependencies ---
	commentRepo := mongostore.NewCommentRepository(db)
	commentService := service.NewCommentService(commentRepo, users, posts, log)
	commentHandler := handler.NewCommentHandler(commentService)

	// --- Comment routes ---
	e.POST("/comments", commentHandler.Create)
	e.GET("/comments", commentHandler.List)

	registerProbes(e, db)
	return e
}
