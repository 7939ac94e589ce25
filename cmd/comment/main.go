// The comment service owns comments on posts. Creation confirms both the
// author and the target post concurrently before persisting; listing
// enriches comments with both relations on a best-effort basis.
package main

import (
	"context"

	"github.com/microblog/platform/internal/api"
	"github.com/microblog/platform/internal/infrastructure/config"
	mongostore "github.com/microblog/platform/internal/infrastructure/db/mongo"
	"github.com/microblog/platform/internal/infrastructure/remote"
	"github.com/microblog/platform/pkg/logger"
)

func main() {
	cfg := config.LoadComment()
	log := logger.Init(logger.Options{
		Service: "comment",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	ctx := context.Background()
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	users := remote.NewUserDirectory(cfg.AuthServiceURL)
	posts := remote.NewPostDirectory(cfg.PostServiceURL)
	e := api.NewCommentRouter(db, users, posts, log)

	log.Info().Str("port", cfg.Port).Msg("comment service listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
