// Package cached provides a caching wrapper over a primary offer repository using Redis.
package cached

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/keksobooking/api/internal/domain"
	"github.com/keksobooking/api/internal/repository"
)

// key helpers
func keyOffer(date int64) string { return "offer:" + strconv.FormatInt(date, 10) }

const keyList = "offers:all"

// OfferRepository is a cache-aside repository combining Redis with a primary store.
type OfferRepository struct {
	primary repository.OfferRepository
	redis   *redis.Client
	ttl     time.Duration
}

// NewOfferRepository creates a new cached repository.
func NewOfferRepository(primary repository.OfferRepository, redis *redis.Client, ttl time.Duration) *OfferRepository {
	return &OfferRepository{primary: primary, redis: redis, ttl: ttl}
}

// Insert writes through to primary, caches the offer and busts the list cache.
func (r *OfferRepository) Insert(ctx context.Context, o domain.Offer) error {
	if err := r.primary.Insert(ctx, o); err != nil {
		return err
	}
	data, _ := json.Marshal(o)
	_ = r.redis.Set(ctx, keyOffer(o.Date), data, r.ttl).Err()
	_ = r.redis.Del(ctx, keyList).Err()
	return nil
}

// InsertMany writes through to primary and busts the list cache.
func (r *OfferRepository) InsertMany(ctx context.Context, offers []domain.Offer) error {
	if err := r.primary.InsertMany(ctx, offers); err != nil {
		return err
	}
	_ = r.redis.Del(ctx, keyList).Err()
	return nil
}

// FindByDate attempts Redis then falls back to primary.
func (r *OfferRepository) FindByDate(ctx context.Context, date int64) (domain.Offer, error) {
	if val, err := r.redis.Get(ctx, keyOffer(date)).Result(); err == nil && val != "" {
		var o domain.Offer
		if jsonErr := json.Unmarshal([]byte(val), &o); jsonErr == nil {
			return o, nil
		}
	}
	o, err := r.primary.FindByDate(ctx, date)
	if err != nil {
		return domain.Offer{}, err
	}
	data, _ := json.Marshal(o)
	_ = r.redis.Set(ctx, keyOffer(o.Date), data, r.ttl).Err()
	return o, nil
}

// List caches the full collection; slicing happens above this layer.
func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	if val, err := r.redis.Get(ctx, keyList).Result(); err == nil && val != "" {
		var offers []domain.Offer
		if jsonErr := json.Unmarshal([]byte(val), &offers); jsonErr == nil {
			return offers, nil
		}
	}
	offers, err := r.primary.List(ctx)
	if err != nil {
		return nil, err
	}
	data, _ := json.Marshal(offers)
	_ = r.redis.Set(ctx, keyList, data, r.ttl).Err()
	return offers, nil
}

var _ repository.OfferRepository = (*OfferRepository)(nil)
