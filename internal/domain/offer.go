// Package domain contains domain models for the application.
package domain

// Location is the pin position derived from an offer address.
type Location struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Image holds uploaded image metadata.
type Image struct {
	Name     string `json:"name" bson:"name"`
	Mimetype string `json:"mimetype" bson:"mimetype"`
}

// Author is the offer author assigned on save.
type Author struct {
	Name   string `json:"name" bson:"name"`
	Avatar string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// Offer represents a rental offer record. Date is unix seconds and doubles as
// the record key (a known weakness of the wire format, kept for compatibility).
type Offer struct {
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Type        string   `json:"type" bson:"type"`
	Price       float64  `json:"price" bson:"price"`
	Guests      float64  `json:"guests,omitempty" bson:"guests,omitempty"`
	Address     string   `json:"address" bson:"address"`
	Checkin     string   `json:"checkin" bson:"checkin"`
	Checkout    string   `json:"checkout" bson:"checkout"`
	Rooms       float64  `json:"rooms" bson:"rooms"`
	Features    []string `json:"features,omitempty" bson:"features,omitempty"`
	Photos      []string `json:"photos,omitempty" bson:"photos,omitempty"`
	Avatar      *Image   `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Preview     *Image   `json:"preview,omitempty" bson:"preview,omitempty"`
	Location    Location `json:"location" bson:"location"`
	Author      Author   `json:"author" bson:"author"`
	Date        int64    `json:"date" bson:"date"`
}

// OffersPage is the response shape for listing offers.
type OffersPage struct {
	Data  []Offer `json:"data"`
	Total int     `json:"total"`
	Limit int     `json:"limit"`
	Skip  int     `json:"skip"`
}

// OfferFromFields builds an Offer from a validated (coerced) payload. Fields
// absent from the payload keep their zero value.
func OfferFromFields(fields map[string]any) Offer {
	o := Offer{
		Title:       stringField(fields, "title"),
		Description: stringField(fields, "description"),
		Type:        stringField(fields, "type"),
		Price:       numberField(fields, "price"),
		Guests:      numberField(fields, "guests"),
		Address:     stringField(fields, "address"),
		Checkin:     stringField(fields, "checkin"),
		Checkout:    stringField(fields, "checkout"),
		Rooms:       numberField(fields, "rooms"),
		Features:    stringsField(fields, "features"),
	}
	o.Avatar = imageField(fields, "avatar")
	o.Preview = imageField(fields, "preview")
	return o
}

func stringField(fields map[string]any, name string) string {
	s, _ := fields[name].(string)
	return s
}

func numberField(fields map[string]any, name string) float64 {
	switch n := fields[name].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func stringsField(fields map[string]any, name string) []string {
	switch v := fields[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func imageField(fields map[string]any, name string) *Image {
	switch v := fields[name].(type) {
	case *Image:
		return v
	case Image:
		return &v
	case map[string]any:
		img := &Image{}
		img.Name, _ = v["name"].(string)
		img.Mimetype, _ = v["mimetype"].(string)
		return img
	default:
		return nil
	}
}
