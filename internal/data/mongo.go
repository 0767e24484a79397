// Package data provides low-level data clients and connection factories.
package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/keksobooking/api/internal/config"
)

const (
	defaultMongoURL = "mongodb://localhost:27017"
	defaultDatabase = "keksobooking"
	connectTimeout  = 10 * time.Second
)

// NewMongoClient connects to the document store based on environment configuration.
func NewMongoClient(ctx context.Context) (*mongo.Client, error) {
	url := config.Conf.MongoURL
	if url == "" {
		url = defaultMongoURL
	}
	client, err := mongo.Connect(options.Client().ApplyURI(url).SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// MongoDatabase selects the configured database on the given client.
func MongoDatabase(client *mongo.Client) *mongo.Database {
	name := config.Conf.MongoDB
	if name == "" {
		name = defaultDatabase
	}
	return client.Database(name)
}
