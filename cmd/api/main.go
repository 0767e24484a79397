// Package main is the entry point for the Keksobooking API server.
package main

import (
	"context"
	"time"

	"github.com/keksobooking/api/internal/config"
	"github.com/keksobooking/api/internal/data"
	"github.com/keksobooking/api/internal/http/handler"
	"github.com/keksobooking/api/internal/http/router"
	"github.com/keksobooking/api/internal/repository"
	"github.com/keksobooking/api/internal/repository/cached"
	mongorepo "github.com/keksobooking/api/internal/repository/mongo"
	"github.com/keksobooking/api/internal/service"
	"github.com/keksobooking/api/pkg/logger"
)

const defaultCacheTTL = 60 * time.Second

func main() {
	ctx := context.Background()
	config.InitConf()
	logger.InitLogging()

	client, err := data.NewMongoClient(ctx)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to mongo: %v", err)
	}
	offers := mongorepo.NewOfferRepository(data.MongoDatabase(client))
	if err := offers.EnsureIndexes(ctx); err != nil {
		logger.Fatal(ctx, "failed to ensure indexes: %v", err)
	}

	var repo repository.OfferRepository = offers
	redisClient := data.NewRedisClient()
	if config.Conf.RedisAddr != "" {
		ttl := defaultCacheTTL
		if config.Conf.CacheTTLSeconds > 0 {
			ttl = time.Duration(config.Conf.CacheTTLSeconds) * time.Second
		}
		repo = cached.NewOfferRepository(offers, redisClient, ttl)
		logger.Info(ctx, "offer cache enabled, ttl=%s", ttl)
	} else {
		redisClient = nil
	}

	svc := service.NewService(repo, service.RealClock{})
	h := handler.NewHandler(svc)
	health := handler.NewHealthHandler(client, redisClient)
	r := router.NewRouter(h, health)

	port := config.Conf.Port
	if port == "" {
		logger.Info(ctx, "no port configured, falling back to default: 8080")
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		logger.Fatal(ctx, "failed to start server: %v", err)
	}
}
