// Package validation implements the schema-driven field validation engine.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind is a declared value kind used for type checks and coercion.
type Kind string

// Supported value kinds.
const (
	KindString Kind = "string"
	KindNumber Kind = "number"
)

// Rule is a single named predicate plus its parameter. A rule produces at most
// one violation message per evaluation. The rule set is closed: every
// implementation lives in this package.
type Rule interface {
	check(value any) (string, bool)
}

// Type checks that a value has the declared kind.
type Type struct {
	Kind Kind
}

func (r Type) check(value any) (string, bool) {
	switch r.Kind {
	case KindNumber:
		if _, ok := numberOf(value); !ok {
			return "should be number", true
		}
	case KindString:
		if _, ok := value.(string); !ok {
			return "should be string", true
		}
	}
	return "", false
}

// Length bounds the length of a string or array value.
type Length struct {
	Min, Max int
}

func (r Length) check(value any) (string, bool) {
	n, ok := lengthOf(value)
	if !ok {
		return "", false
	}
	if n < r.Min {
		return fmt.Sprintf("should be more than %d", r.Min), true
	}
	if n > r.Max {
		return fmt.Sprintf("should be less than %d", r.Max), true
	}
	return "", false
}

// Range bounds a numeric value.
type Range struct {
	Min, Max float64
}

func (r Range) check(value any) (string, bool) {
	v, ok := numberOf(value)
	if !ok {
		return "", false
	}
	if v < r.Min {
		return "should be more than " + formatNumber(r.Min), true
	}
	if v > r.Max {
		return "should be less than " + formatNumber(r.Max), true
	}
	return "", false
}

// OneOf checks scalar membership in the allowed set.
type OneOf struct {
	Allowed []string
}

func (r OneOf) check(value any) (string, bool) {
	s, ok := value.(string)
	if ok {
		for _, allowed := range r.Allowed {
			if s == allowed {
				return "", false
			}
		}
	}
	return "should be one of " + strings.Join(r.Allowed, ","), true
}

// ManyOf checks that every element of an array value belongs to the allowed set.
type ManyOf struct {
	Allowed []string
}

func (r ManyOf) check(value any) (string, bool) {
	items, ok := itemsOf(value)
	if !ok {
		return "", false
	}
	for _, item := range items {
		if !contains(r.Allowed, item) {
			return "only " + strings.Join(r.Allowed, ",") + " are allowed", true
		}
	}
	return "", false
}

// UniqueItems checks that an array value has no duplicate elements.
type UniqueItems struct{}

func (UniqueItems) check(value any) (string, bool) {
	items, ok := itemsOf(value)
	if !ok {
		return "", false
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			return "should be array of unique values", true
		}
		seen[item] = struct{}{}
	}
	return "", false
}

// Mask checks a string value against a regular expression; a value that does
// NOT match the pattern is a violation. The match is stateless.
type Mask struct {
	Pattern *regexp.Regexp
}

func (r Mask) check(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	if !r.Pattern.MatchString(s) {
		return "doesn't fit the expected format", true
	}
	return "", false
}

// Image checks that a value carries an image mimetype.
type Image struct{}

func (Image) check(value any) (string, bool) {
	if mimetype, ok := mimetypeOf(value); ok && strings.Contains(strings.ToLower(mimetype), "image") {
		return "", false
	}
	return "should be image", true
}

func numberOf(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func lengthOf(value any) (int, bool) {
	switch v := value.(type) {
	case string:
		return len([]rune(v)), true
	case []any:
		return len(v), true
	case []string:
		return len(v), true
	default:
		return 0, false
	}
}

// itemsOf flattens an array value into its string elements. Non-string
// elements render through fmt so set rules can still compare them.
func itemsOf(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			} else {
				items = append(items, fmt.Sprint(item))
			}
		}
		return items, true
	default:
		return nil, false
	}
}

func mimetypeOf(value any) (string, bool) {
	switch v := value.(type) {
	case map[string]any:
		s, ok := v["mimetype"].(string)
		return s, ok
	case map[string]string:
		s, ok := v["mimetype"]
		return s, ok
	default:
		return "", false
	}
}

func contains(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}

// formatNumber renders a bound without a trailing fraction for whole values.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
