// The gateway is the single public entry point. It forwards path
// prefixes to the owning service and adds no business logic of its own.
package main

import (
	"github.com/microblog/platform/internal/gateway"
	"github.com/microblog/platform/internal/infrastructure/config"
	"github.com/microblog/platform/pkg/logger"
)

func main() {
	cfg := config.LoadGateway()
	log := logger.Init(logger.Options{
		Service: "gateway",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	e, err := gateway.NewRouter(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build gateway")
	}

	log.Info().Str("port", cfg.Port).Msg("gateway listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
