// Package generator produces random offer entities for development seeding.
package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/keksobooking/api/internal/domain"
)

var titles = []string{
	"Большая уютная квартира",
	"Маленькая неуютная квартира",
	"Огромный прекрасный дворец",
	"Маленький ужасный дворец",
	"Красивый гостевой домик",
	"Некрасивый негостеприимный домик",
	"Уютное бунгало далеко от моря",
	"Неуютное бунгало по колено в воде",
}

var types = []string{"flat", "palace", "house", "bungalo"}

var checkTimes = []string{"12:00", "13:00", "14:00"}

var features = []string{"wifi", "dishwasher", "parking", "washer", "elevator", "conditioner"}

var photos = []string{
	"http://o0.github.io/assets/images/tokyo/hotel1.jpg",
	"http://o0.github.io/assets/images/tokyo/hotel2.jpg",
	"http://o0.github.io/assets/images/tokyo/hotel3.jpg",
}

// Value bounds mirrored by the seeded data.
const (
	priceMin = 1000
	priceMax = 1000000
	roomsMin = 1
	roomsMax = 5
	guestMax = 10
	xMin     = 300
	xMax     = 900
	yMin     = 150
	yMax     = 500
	daysBack = 7
)

// Generator builds random offers from a seeded source, deterministic per seed.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// Option configures the Generator.
type Option func(*Generator)

// WithNow overrides the time source used for date stamping.
func WithNow(f func() time.Time) Option { return func(g *Generator) { g.now = f } }

// New creates a Generator seeded with the given value.
func New(seed int64, opts ...Option) *Generator {
	g := &Generator{rnd: rand.New(rand.NewSource(seed)), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Entity generates one random offer.
func (g *Generator) Entity() domain.Offer {
	location := domain.Location{
		X: float64(g.between(xMin, xMax)),
		Y: float64(g.between(yMin, yMax)),
	}
	return domain.Offer{
		Title:    titles[g.rnd.Intn(len(titles))],
		Type:     types[g.rnd.Intn(len(types))],
		Price:    float64(g.between(priceMin, priceMax)),
		Guests:   float64(g.rnd.Intn(guestMax + 1)),
		Address:  fmt.Sprintf("%d, %d", int(location.X), int(location.Y)),
		Checkin:  checkTimes[g.rnd.Intn(len(checkTimes))],
		Checkout: checkTimes[g.rnd.Intn(len(checkTimes))],
		Rooms:    float64(g.between(roomsMin, roomsMax)),
		Features: g.sample(features),
		Photos:   g.shuffle(photos),
		Location: location,
		Author:   domain.Author{Avatar: "https://robohash.org/" + g.randomString()},
		Date:     g.date(),
	}
}

// Entities generates n offers with distinct date keys.
func (g *Generator) Entities(n int) []domain.Offer {
	offers := make([]domain.Offer, 0, n)
	seen := make(map[int64]struct{}, n)
	for i := 0; i < n; i++ {
		o := g.Entity()
		for {
			if _, dup := seen[o.Date]; !dup {
				break
			}
			o.Date--
		}
		seen[o.Date] = struct{}{}
		offers = append(offers, o)
	}
	return offers
}

// date picks a unix timestamp within the last seven days.
func (g *Generator) date() int64 {
	now := g.now().Unix()
	since := now - daysBack*24*60*60
	return since + g.rnd.Int63n(now-since+1)
}

// between returns a random value in [min, max].
func (g *Generator) between(min, max int) int {
	return min + g.rnd.Intn(max-min+1)
}

// sample returns a random-size random-order subset.
func (g *Generator) sample(values []string) []string {
	shuffled := g.shuffle(values)
	return shuffled[:g.rnd.Intn(len(values))]
}

func (g *Generator) shuffle(values []string) []string {
	out := append([]string(nil), values...)
	g.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (g *Generator) randomString() string {
	return strconv.FormatInt(g.rnd.Int63(), 36)
}
