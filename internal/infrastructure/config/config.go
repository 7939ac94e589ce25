// Package config loads per-service configuration from environment
// variables. Configuration is read once at startup and never re-read.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// MongoConfig captures the record store connection settings.
type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=microblog"`
}

// AuthConfig configures the auth service.
type AuthConfig struct {
	Port      string        `env:"PORT,       default=4004"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`

	Mongo MongoConfig
}

// PostConfig configures the post service.
type PostConfig struct {
	Port      string `env:"PORT,      default=4002"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	// AuthServiceURL is the base URL of the service owning identities.
	AuthServiceURL string `env:"AUTH_SERVICE_URL, default=http://localhost:4004"`

	Mongo MongoConfig
}

// CommentConfig configures the comment service.
type CommentConfig struct {
	Port     string `env:"PORT,      default=4003"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	AuthServiceURL string `env:"AUTH_SERVICE_URL, default=http://localhost:4004"`
	PostServiceURL string `env:"POST_SERVICE_URL, default=http://localhost:4002"`

	Mongo MongoConfig
}

// GatewayConfig configures the reverse proxy.
type GatewayConfig struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	AuthServiceURL    string `env:"AUTH_SERVICE_URL,    default=http://localhost:4004"`
	PostServiceURL    string `env:"POST_SERVICE_URL,    default=http://localhost:4002"`
	CommentServiceURL string `env:"COMMENT_SERVICE_URL, default=http://localhost:4003"`
}

// LoadAuth reads the auth service configuration from the environment.
func LoadAuth() *AuthConfig {
	var cfg AuthConfig
	mustProcess(&cfg)
	return &cfg
}

// LoadPost reads the post service configuration from the environment.
func LoadPost() *PostConfig {
	var cfg PostConfig
	mustProcess(&cfg)
	return &cfg
}

// LoadComment reads the comment service configuration from the environment.
func LoadComment() *CommentConfig {
	var cfg CommentConfig
	mustProcess(&cfg)
	return &cfg
}

// LoadGateway reads the gateway configuration from the environment.
func LoadGateway() *GatewayConfig {
	var cfg GatewayConfig
	mustProcess(&cfg)
	return &cfg
}

func mustProcess(cfg any) {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
}
