package validation

import "github.com/keksobooking/api/internal/apperr"

// Validate checks a raw payload against a schema. It coerces values, evaluates
// every declared rule and collects every violation across all fields; the call
// either fails with the full ordered violation sequence or returns the
// normalized payload, never both. Fields without declared checks pass through
// to the output untouched.
func Validate(payload map[string]any, schema Schema) (map[string]any, error) {
	out := make(map[string]any, len(payload))
	var violations []apperr.Violation
	declared := make(map[string]struct{}, len(schema))

	for _, field := range schema {
		declared[field.Name] = struct{}{}
		value := Coerce(payload[field.Name], field.Kind, field.Array)

		if value == nil {
			// An absent optional field is not an error; an absent required
			// field is exactly one violation, with no further checks.
			if field.Required {
				violations = append(violations, apperr.NewViolation(field.Name, "is required"))
			}
			continue
		}

		out[field.Name] = value
		for _, rule := range field.Rules {
			if msg, bad := rule.check(value); bad {
				violations = append(violations, apperr.NewViolation(field.Name, msg))
			}
		}
	}

	for name, value := range payload {
		if _, ok := declared[name]; !ok {
			out[name] = value
		}
	}

	if len(violations) > 0 {
		return nil, apperr.NewValidation(violations)
	}
	return out, nil
}
