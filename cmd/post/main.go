// The post service owns content records. Creation confirms the author
// against the auth service before persisting; reads enrich posts with
// author details on a best-effort basis.
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
	cfg := config.LoadPost()
	log := logger.Init(logger.Options{
		Service: "post",
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
	e := api.NewPostRouter(db, users, cfg, log)

	log.Info().Str("port", cfg.Port).Msg("post service listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
