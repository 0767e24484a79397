// Package config provides configuration loading and management for the Keksobooking application.
package config

import (
	"context"
	"os"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"

	"github.com/keksobooking/api/pkg/logger"
)

// Config holds environment configuration for the Keksobooking application.
type Config struct {
	// Port is the port on which the API server listens.
	Port string `env:"BOOKING_PORT"`
	// MongoURL is the connection string of the document store.
	MongoURL string `env:"MONGO_URL"`
	// MongoDB is the database name inside the document store.
	MongoDB string `env:"MONGO_DB"`
	// RedisAddr enables the redis offer cache when set.
	RedisAddr string `env:"REDIS_ADDR"`
	// CacheTTLSeconds is the lifetime of cached offers and offer pages.
	CacheTTLSeconds int `env:"CACHE_TTL_SECONDS"`
}

// Conf holds the global configuration for the Keksobooking application.
var Conf Config

func loadDotEnv() {
	// Load .env file at the root of the project into environment if present.
	// Does not override existing environ variable
	path := os.Getenv("DOTENV_PATHS")
	if path != "" {
		err := godotenv.Load(strings.Split(path, ",")...)
		if err != nil {
			logger.Fatal(context.Background(), err.Error())
		}
	}
}

// InitConf initializes the global configuration by loading environment variables and .env files.
func InitConf() {
	loadDotEnv()

	if err := env.Parse(&Conf); err != nil {
		logger.Fatal(context.Background(), err.Error())
	}
}
