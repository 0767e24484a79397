package apperr

import "strings"

// body is the JSON shape of a non-validation error.
type body struct {
	Code         int    `json:"code"`
	Error        string `json:"error"`
	ErrorMessage string `json:"errorMessage"`
}

// HTMLBody flattens an error into a single human-readable string. Violations
// render as "<fieldName> <errorMessage>" joined with ", " in list order.
func HTMLBody(err error) string {
	e := From(err)
	if len(e.Violations) > 0 {
		parts := make([]string, 0, len(e.Violations))
		for _, v := range e.Violations {
			if v.FieldName != "" {
				parts = append(parts, v.FieldName+" "+v.ErrorMessage)
			} else {
				parts = append(parts, v.ErrorMessage)
			}
		}
		return strings.Join(parts, ", ")
	}
	if e.Message != "" {
		return e.Message
	}
	return DefaultMessage
}

// JSONBody renders an error as a JSON array: the violation list verbatim when
// present, otherwise a single synthesized {code, error, errorMessage} entry.
func JSONBody(err error) any {
	e := From(err)
	if len(e.Violations) > 0 {
		return e.Violations
	}
	message := e.Message
	if message == "" {
		message = DefaultMessage
	}
	return []body{{Code: e.Code, Error: e.Label, ErrorMessage: message}}
}
