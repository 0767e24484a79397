package validation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/keksobooking/api/internal/apperr"
)

func violationsOf(t *testing.T, err error) []apperr.Violation {
	t.Helper()
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apperr.Error, got %T: %v", err, err)
	}
	return ae.Violations
}

func TestValidate_MissingRequiredField(t *testing.T) {
	out, err := Validate(map[string]any{}, Schema{
		{Name: "price", Kind: KindNumber, Required: true, Rules: []Rule{Type{KindNumber}, Range{Min: 1, Max: 100000}}},
	})
	if out != nil {
		t.Fatalf("output must be nil on failure, got %#v", out)
	}
	vs := violationsOf(t, err)
	if len(vs) != 1 {
		t.Fatalf("missing required field must yield exactly one violation, got %d: %+v", len(vs), vs)
	}
	want := apperr.Violation{Error: apperr.ViolationLabel, FieldName: "price", ErrorMessage: "is required"}
	if vs[0] != want {
		t.Fatalf("want %+v, got %+v", want, vs[0])
	}
}

func TestValidate_CoercedStringFailsRange(t *testing.T) {
	_, err := Validate(map[string]any{"price": "200000"}, Schema{
		{Name: "price", Kind: KindNumber, Required: true, Rules: []Rule{Type{KindNumber}, Range{Min: 1, Max: 100000}}},
	})
	vs := violationsOf(t, err)
	if len(vs) != 1 {
		t.Fatalf("want 1 violation, got %d: %+v", len(vs), vs)
	}
	// the string coerces to a number first, so the range rule fires rather than
	// the type rule
	if vs[0].ErrorMessage != "should be less than 100000" {
		t.Fatalf("wrong message: %q", vs[0].ErrorMessage)
	}
}

func TestValidate_CoercedValueInOutput(t *testing.T) {
	out, err := Validate(map[string]any{"price": "500"}, Schema{
		{Name: "price", Kind: KindNumber, Required: true, Rules: []Rule{Type{KindNumber}, Range{Min: 1, Max: 100000}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["price"] != float64(500) {
		t.Fatalf("want coerced float64 500, got %#v", out["price"])
	}
}

func TestValidate_MultipleViolationsPerField(t *testing.T) {
	// a string both too long and off-format collects both violations
	long := make([]byte, 0, 120)
	for i := 0; i < 110; i++ {
		long = append(long, 'x')
	}
	_, err := Validate(map[string]any{"address": string(long)}, Schema{
		{Name: "address", Kind: KindString, Required: true, Rules: []Rule{Type{KindString}, Length{Min: 0, Max: 100}, Mask{Pattern: addressMask}}},
	})
	vs := violationsOf(t, err)
	if len(vs) != 2 {
		t.Fatalf("want 2 violations, got %d: %+v", len(vs), vs)
	}
	if vs[0].ErrorMessage != "should be less than 100" {
		t.Fatalf("wrong first message: %q", vs[0].ErrorMessage)
	}
	if vs[1].ErrorMessage != "doesn't fit the expected format" {
		t.Fatalf("wrong second message: %q", vs[1].ErrorMessage)
	}
}

func TestValidate_ViolationsFollowSchemaOrder(t *testing.T) {
	payload := map[string]any{
		"type":  "castle",
		"price": float64(0),
	}
	_, err := Validate(payload, Schema{
		{Name: "title", Kind: KindString, Required: true, Rules: []Rule{Type{KindString}}},
		{Name: "type", Kind: KindString, Required: true, Rules: []Rule{Type{KindString}, OneOf{Allowed: OfferTypes}}},
		{Name: "price", Kind: KindNumber, Required: true, Rules: []Rule{Type{KindNumber}, Range{Min: 1, Max: 100000}}},
	})
	vs := violationsOf(t, err)
	wantFields := []string{"title", "type", "price"}
	if len(vs) != len(wantFields) {
		t.Fatalf("want %d violations, got %d: %+v", len(wantFields), len(vs), vs)
	}
	for i, f := range wantFields {
		if vs[i].FieldName != f {
			t.Fatalf("violation %d: want field %q, got %q", i, f, vs[i].FieldName)
		}
	}
}

func TestValidate_OptionalFieldAbsent(t *testing.T) {
	out, err := Validate(map[string]any{}, Schema{
		{Name: "guests", Kind: KindNumber, Rules: []Rule{Type{KindNumber}, Range{Min: 1, Max: 100}}},
	})
	if err != nil {
		t.Fatalf("absent optional field must not error: %v", err)
	}
	if _, ok := out["guests"]; ok {
		t.Fatalf("absent field must not appear in output: %#v", out)
	}
}

func TestValidate_UnknownFieldsPassThrough(t *testing.T) {
	out, err := Validate(map[string]any{"price": float64(100), "extra": "kept"}, Schema{
		{Name: "price", Kind: KindNumber, Required: true, Rules: []Rule{Type{KindNumber}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["extra"] != "kept" {
		t.Fatalf("unknown field must pass through, got %#v", out)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	payload := map[string]any{
		"title":    "Уютное гнездышко для молодоженов и не только",
		"type":     "flat",
		"price":    "30000",
		"address":  "310, 450",
		"checkin":  "12:00",
		"checkout": "13:00",
		"rooms":    float64(2),
		"features": "wifi",
	}
	first, err := Validate(payload, PostOffer)
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	second, err := Validate(first, PostOffer)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation is not idempotent:\nfirst:  %#v\nsecond: %#v", first, second)
	}
	if !reflect.DeepEqual(first["features"], []any{"wifi"}) {
		t.Fatalf("scalar feature should be wrapped once, got %#v", first["features"])
	}
}

func TestValidate_PostOfferFull(t *testing.T) {
	payload := map[string]any{
		"title":    "Маленькая квартирка рядом с парком и речкой",
		"type":     "flat",
		"price":    float64(30000),
		"guests":   float64(2),
		"address":  "310, 450",
		"checkin":  "12:00",
		"checkout": "14:00",
		"rooms":    float64(1),
		"features": []any{"wifi", "dishwasher"},
		"avatar":   map[string]any{"name": "keks.png", "mimetype": "image/png"},
		"name":     "Pavel",
	}
	out, err := Validate(payload, PostOffer)
	if err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if out["title"] != payload["title"] || out["name"] != "Pavel" {
		t.Fatalf("output mangled: %#v", out)
	}
}

func TestValidate_PostOfferCollectsAcrossFields(t *testing.T) {
	payload := map[string]any{
		"title":    "too short",
		"type":     "castle",
		"price":    float64(0),
		"address":  "nowhere",
		"checkin":  "noon",
		"checkout": "13:00",
		"rooms":    float64(2),
		"features": []any{"wifi", "wifi", "sauna"},
	}
	_, err := Validate(payload, PostOffer)
	vs := violationsOf(t, err)
	byField := map[string][]string{}
	for _, v := range vs {
		byField[v.FieldName] = append(byField[v.FieldName], v.ErrorMessage)
	}
	wants := map[string]string{
		"title":   "should be more than 30",
		"type":    "should be one of flat,palace,house,bungalo",
		"price":   "should be more than 1",
		"address": "doesn't fit the expected format",
		"checkin": "doesn't fit the expected format",
	}
	for field, msg := range wants {
		found := false
		for _, got := range byField[field] {
			if got == msg {
				found = true
			}
		}
		if !found {
			t.Errorf("missing violation for %s: want %q, got %v", field, msg, byField[field])
		}
	}
	featureMsgs := byField["features"]
	if len(featureMsgs) != 2 {
		t.Fatalf("features should collect unique and allowed violations, got %v", featureMsgs)
	}
	if featureMsgs[0] != "should be array of unique values" {
		t.Errorf("wrong features violation order: %v", featureMsgs)
	}
}

func TestValidate_GetOffersQuery(t *testing.T) {
	out, err := Validate(map[string]any{"limit": "5", "skip": "2"}, GetOffers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["limit"] != float64(5) || out["skip"] != float64(2) {
		t.Fatalf("query params should coerce to numbers, got %#v", out)
	}

	_, err = Validate(map[string]any{"limit": "many"}, GetOffers)
	vs := violationsOf(t, err)
	if len(vs) != 1 || vs[0].FieldName != "limit" || vs[0].ErrorMessage != "should be number" {
		t.Fatalf("want limit should-be-number violation, got %+v", vs)
	}
}

func TestValidate_GetOfferDate(t *testing.T) {
	out, err := Validate(map[string]any{"date": "1541232233"}, GetOffer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["date"] != float64(1541232233) {
		t.Fatalf("want coerced date, got %#v", out)
	}

	_, err = Validate(map[string]any{"date": "abc"}, GetOffer)
	vs := violationsOf(t, err)
	if len(vs) != 1 || vs[0].ErrorMessage != "should be number" {
		t.Fatalf("want should-be-number violation, got %+v", vs)
	}
}
