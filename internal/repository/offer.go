// Package repository defines data access contracts for offers.
package repository

import (
	"context"
	"errors"

	"github.com/keksobooking/api/internal/domain"
)

// ErrNotFound is returned when no offer exists for the requested date key.
var ErrNotFound = errors.New("offer not found")

// OfferRepository defines methods for offer data access.
type OfferRepository interface {
	Insert(ctx context.Context, o domain.Offer) error
	InsertMany(ctx context.Context, offers []domain.Offer) error
	FindByDate(ctx context.Context, date int64) (domain.Offer, error)
	List(ctx context.Context) ([]domain.Offer, error)
}
