package validation

import (
	"math"
	"strconv"
)

// Coerce normalizes a raw payload value ahead of rule evaluation. Multipart
// form fields arrive as strings, so a numeric-looking string becomes a number
// when the field's declared kind is number; a single repeated-field value
// degrades to a scalar, so it is wrapped back into a one-element array when
// the field expects one. Values that need no normalization pass through.
func Coerce(value any, kind Kind, array bool) any {
	if kind == KindNumber {
		if s, ok := value.(string); ok {
			if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
				return f
			}
		}
	}
	if array && value != nil {
		switch value.(type) {
		case []any, []string:
		default:
			return []any{value}
		}
	}
	return value
}
