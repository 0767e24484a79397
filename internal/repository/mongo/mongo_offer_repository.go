// Package mongo provides a MongoDB-backed implementation of the offer repository.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/keksobooking/api/internal/domain"
	"github.com/keksobooking/api/internal/repository"
	"github.com/keksobooking/api/pkg/logger"
)

const collectionName = "offers"

// OfferRepository implements repository.OfferRepository using MongoDB.
type OfferRepository struct {
	coll *mongo.Collection
}

// NewOfferRepository creates a new MongoDB-backed offer repository.
func NewOfferRepository(db *mongo.Database) *OfferRepository {
	return &OfferRepository{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique date index used as the de-facto record key.
func (r *OfferRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create date index: %w", err)
	}
	logger.Info(ctx, "mongo indexes ensured on %s", collectionName)
	return nil
}

// Insert adds a new offer document.
func (r *OfferRepository) Insert(ctx context.Context, o domain.Offer) error {
	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// InsertMany bulk-saves offers, used by the fill command.
func (r *OfferRepository) InsertMany(ctx context.Context, offers []domain.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(offers))
	for _, o := range offers {
		docs = append(docs, o)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert offers: %w", err)
	}
	return nil
}

// FindByDate retrieves an offer by its date key.
func (r *OfferRepository) FindByDate(ctx context.Context, date int64) (domain.Offer, error) {
	var o domain.Offer
	err := r.coll.FindOne(ctx, bson.D{{Key: "date", Value: date}}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Offer{}, repository.ErrNotFound
		}
		return domain.Offer{}, fmt.Errorf("find offer: %w", err)
	}
	return o, nil
}

// List returns all offers ordered by date descending.
func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	var offers []domain.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	return offers, nil
}

var _ repository.OfferRepository = (*OfferRepository)(nil)
