// The auth service owns identities: it registers users, verifies
// credentials, mints bearer tokens, and serves the public identity
// read endpoints consumed by the sibling services.
package main

import (
	"context"

	"github.com/microblog/platform/internal/api"
	"github.com/microblog/platform/internal/infrastructure/config"
	mongostore "github.com/microblog/platform/internal/infrastructure/db/mongo"
	"github.com/microblog/platform/pkg/logger"
)

func main() {
	cfg := config.LoadAuth()
	log := logger.Init(logger.Options{
		Service: "auth",
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

	if err := mongostore.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	e := api.NewAuthRouter(db, cfg, log)

	log.Info().Str("port", cfg.Port).Msg("auth service listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
