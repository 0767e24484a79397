// Package service contains business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/keksobooking/api/internal/domain"
	"github.com/keksobooking/api/internal/repository"
)

// Clock provides the current time. Allows for testable time.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// Error variables
var (
	ErrOfferNotFound  = errors.New("offer not found")
	ErrInvalidAddress = errors.New("address does not contain coordinates")
)

// Defaults applied to list slicing when the client omits the parameters.
const (
	DefaultSkip  = 0
	DefaultLimit = 20
)

// defaultNames are assigned to anonymous offer authors.
var defaultNames = []string{"Keks", "Pavel", "Nikolay", "Alex", "Ulyana", "Anastasyia", "Julia"}

// Service provides offer-related business logic.
type Service struct {
	repo     repository.OfferRepository
	clock    Clock
	pickName func() string
}

// Option configures the Service.
type Option func(*Service)

// WithNamePicker overrides the default-author-name source. Allows for testable randomness.
func WithNamePicker(f func() string) Option {
	return func(s *Service) { s.pickName = f }
}

// NewService creates a new Service with the given OfferRepository and Clock.
func NewService(repo repository.OfferRepository, clock Clock, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		clock: clock,
		pickName: func() string {
			return defaultNames[rand.Intn(len(defaultNames))]
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListOffers returns one page of offers. The repository hands back the full
// collection; slicing happens here and total always reports the full size.
func (s *Service) ListOffers(ctx context.Context, skip, limit int) (domain.OffersPage, error) {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	offers, err := s.repo.List(ctx)
	if err != nil {
		return domain.OffersPage{}, fmt.Errorf("list offers: %w", err)
	}
	total := len(offers)
	from := skip
	if from > total {
		from = total
	}
	till := from + limit
	if till > total {
		till = total
	}
	return domain.OffersPage{
		Data:  offers[from:till],
		Total: total,
		Limit: limit,
		Skip:  skip,
	}, nil
}

// GetOfferByDate fetches a single offer by its date key.
func (s *Service) GetOfferByDate(ctx context.Context, date int64) (domain.Offer, error) {
	o, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		// Only translate not found at the service boundary
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Offer{}, fmt.Errorf("%w", ErrOfferNotFound)
		}
		// All other errors are just wrapped
		return domain.Offer{}, fmt.Errorf("find by date: %w", err)
	}
	return o, nil
}

// CreateOffer persists a validated offer payload. It derives the location from
// the address, stamps the date key and assigns the author before saving.
func (s *Service) CreateOffer(ctx context.Context, fields map[string]any) (domain.Offer, error) {
	offer := domain.OfferFromFields(fields)

	location, err := locationFromAddress(offer.Address)
	if err != nil {
		return domain.Offer{}, err
	}
	offer.Location = location
	offer.Date = s.clock.Now().Unix()

	name, _ := fields["name"].(string)
	if name == "" {
		name = s.pickName()
	}
	offer.Author = domain.Author{Name: name}
	if offer.Avatar != nil {
		offer.Author.Avatar = fmt.Sprintf("api/offers/%d/avatar", offer.Date)
	}

	if err := s.repo.Insert(ctx, offer); err != nil {
		return domain.Offer{}, fmt.Errorf("insert offer: %w", err)
	}
	return offer, nil
}

// locationFromAddress splits an "<x>, <y>" address into coordinates.
func locationFromAddress(address string) (domain.Location, error) {
	parts := strings.SplitN(address, ",", 2)
	if len(parts) != 2 {
		return domain.Location{}, ErrInvalidAddress
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return domain.Location{}, ErrInvalidAddress
	}
	return domain.Location{X: x, Y: y}, nil
}
