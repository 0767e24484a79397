package validation

import (
	"reflect"
	"testing"
)

func TestCoerce_NumericString(t *testing.T) {
	got := Coerce("200000", KindNumber, false)
	if got != float64(200000) {
		t.Fatalf("want float64 200000, got %#v", got)
	}
}

func TestCoerce_NonNumericStringKept(t *testing.T) {
	got := Coerce("abc", KindNumber, false)
	if got != "abc" {
		t.Fatalf("want abc untouched, got %#v", got)
	}
}

func TestCoerce_StringKindUntouched(t *testing.T) {
	got := Coerce("42", KindString, false)
	if got != "42" {
		t.Fatalf("numeric-looking string must stay a string for string fields, got %#v", got)
	}
}

func TestCoerce_ScalarWrappedIntoArray(t *testing.T) {
	got := Coerce("wifi", "", true)
	if !reflect.DeepEqual(got, []any{"wifi"}) {
		t.Fatalf("want one-element array, got %#v", got)
	}
}

func TestCoerce_ArrayNotRewrapped(t *testing.T) {
	in := []any{"wifi", "parking"}
	got := Coerce(in, "", true)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("array should pass through, got %#v", got)
	}
}

func TestCoerce_NilStaysNil(t *testing.T) {
	if got := Coerce(nil, KindNumber, true); got != nil {
		t.Fatalf("nil must stay nil, got %#v", got)
	}
}

func TestCoerce_AlreadyNumber(t *testing.T) {
	if got := Coerce(float64(7), KindNumber, false); got != float64(7) {
		t.Fatalf("number must pass through, got %#v", got)
	}
}

func TestCoerce_InfinityRejected(t *testing.T) {
	if got := Coerce("Inf", KindNumber, false); got != "Inf" {
		t.Fatalf("non-finite values must not coerce, got %#v", got)
	}
}
