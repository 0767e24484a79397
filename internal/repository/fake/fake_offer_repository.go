// Package fake provides in-memory fakes for repository interfaces for testing.
package fake

import (
	"context"
	"sort"

	"github.com/keksobooking/api/internal/domain"
	"github.com/keksobooking/api/internal/repository"
)

// OfferRepository is an in-memory fake implementing repository.OfferRepository.
// It's intentionally simple and not concurrency-safe (tests typically run single-threaded).
type OfferRepository struct {
	byDate map[int64]domain.Offer
}

// Option configures the fake repository.
type Option func(*OfferRepository)

// WithOffers seeds the repository with the provided offers (by date).
func WithOffers(offers ...domain.Offer) Option {
	return func(r *OfferRepository) {
		for _, o := range offers {
			r.byDate[o.Date] = o
		}
	}
}

// NewOfferRepository creates a new in-memory fake repo.
func NewOfferRepository(opts ...Option) *OfferRepository {
	r := &OfferRepository{byDate: make(map[int64]domain.Offer)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *OfferRepository) Insert(_ context.Context, o domain.Offer) error {
	r.byDate[o.Date] = o
	return nil
}

func (r *OfferRepository) InsertMany(_ context.Context, offers []domain.Offer) error {
	for _, o := range offers {
		r.byDate[o.Date] = o
	}
	return nil
}

func (r *OfferRepository) FindByDate(_ context.Context, date int64) (domain.Offer, error) {
	if o, ok := r.byDate[date]; ok {
		return o, nil
	}
	return domain.Offer{}, repository.ErrNotFound
}

func (r *OfferRepository) List(_ context.Context) ([]domain.Offer, error) {
	offers := make([]domain.Offer, 0, len(r.byDate))
	for _, o := range r.byDate {
		offers = append(offers, o)
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].Date > offers[j].Date })
	return offers, nil
}

var _ repository.OfferRepository = (*OfferRepository)(nil)
