// Package main implements the fill command: it seeds the document store with
// randomly generated offers for development.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/keksobooking/api/internal/config"
	"github.com/keksobooking/api/internal/data"
	"github.com/keksobooking/api/internal/generator"
	mongorepo "github.com/keksobooking/api/internal/repository/mongo"
	"github.com/keksobooking/api/pkg/logger"
)

func main() {
	count := flag.Int("count", 20, "number of offers to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	ctx := context.Background()
	config.InitConf()
	logger.InitLogging()

	client, err := data.NewMongoClient(ctx)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to mongo: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongorepo.NewOfferRepository(data.MongoDatabase(client))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatal(ctx, "failed to ensure indexes: %v", err)
	}

	offers := generator.New(*seed).Entities(*count)
	if err := repo.InsertMany(ctx, offers); err != nil {
		logger.Fatal(ctx, "failed to save offers: %v", err)
	}
	logger.Info(ctx, "done, %d offers saved", len(offers))
}
