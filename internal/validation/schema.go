package validation

import "regexp"

// Field declares the checks for one payload field. Field order within a schema
// determines the order in which violations for different fields are reported.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Array marks fields whose scalar raw values are wrapped into a
	// one-element array before rule evaluation.
	Array bool
	Rules []Rule
}

// Schema is an ordered set of field declarations for one entity shape.
type Schema []Field

// OfferTypes are the allowed lodging types.
var OfferTypes = []string{"flat", "palace", "house", "bungalo"}

// OfferFeatures are the allowed offer features.
var OfferFeatures = []string{"wifi", "dishwasher", "parking", "washer", "elevator", "conditioner"}

var (
	addressMask = regexp.MustCompile(`^\d+,\s*\d+$`)
	timeMask    = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// PostOffer validates the offer-creation payload.
var PostOffer = Schema{
	{Name: "title", Kind: KindString, Required: true, Rules: []Rule{Type{KindString}, Length{Min: 30, Max: 140}}},
	{Name: "description", Kind: KindString, Rules: []Rule{Type{KindString}, Length{Min: 0, Max: 1000}}},
	{Name: "type", Kind: KindString, Required: true, Rules: []Rule{Type{KindString}, OneOf{Allowed: OfferTypes}}},
	{Name: "price", Kind: KindNumber, Required: true, Rules: []Rule{Type{KindNumber}, Range{Min: 1, Max: 100000}}},
	{Name: "guests", Kind: KindNumber, Rules: []Rule{Type{KindNumber}, Range{Min: 1, Max: 100}}},
	{Name: "address", Kind: KindString, Required: true, Rules: []Rule{Type{KindString}, Length{Min: 0, Max: 100}, Mask{Pattern: addressMask}}},
	{Name: "checkin", Kind: KindString, Required: true, Rules: []Rule{Type{KindString}, Mask{Pattern: timeMask}}},
	{Name: "checkout", Kind: KindString, Required: true, Rules: []Rule{Type{KindString}, Mask{Pattern: timeMask}}},
	{Name: "rooms", Kind: KindNumber, Required: true, Rules: []Rule{Type{KindNumber}, Range{Min: 0, Max: 1000}}},
	{Name: "features", Array: true, Rules: []Rule{UniqueItems{}, ManyOf{Allowed: OfferFeatures}}},
	{Name: "avatar", Rules: []Rule{Image{}}},
	{Name: "preview", Rules: []Rule{Image{}}},
	{Name: "name", Kind: KindString, Rules: []Rule{Type{KindString}}},
}

// GetOffers checks the list query parameters when present.
var GetOffers = Schema{
	{Name: "limit", Kind: KindNumber, Rules: []Rule{Type{KindNumber}}},
	{Name: "skip", Kind: KindNumber, Rules: []Rule{Type{KindNumber}}},
}

// GetOffer checks the date path parameter.
var GetOffer = Schema{
	{Name: "date", Kind: KindNumber, Required: true, Rules: []Rule{Type{KindNumber}}},
}
