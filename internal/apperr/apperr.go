// Package apperr defines the application error taxonomy shared by the
// validation engine and the HTTP response boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultMessage is the catch-all body for errors that carry no message of their own.
const DefaultMessage = "Server has fallen into unrecoverable problem."

// ViolationLabel marks a field-scoped validation failure.
const ViolationLabel = "Validation Error"

// Violation is a single field-scoped validation failure record.
type Violation struct {
	Error        string `json:"error"`
	FieldName    string `json:"fieldName"`
	ErrorMessage string `json:"errorMessage"`
}

// NewViolation creates a Violation for the given field and message.
func NewViolation(fieldName, errorMessage string) Violation {
	return Violation{
		Error:        ViolationLabel,
		FieldName:    fieldName,
		ErrorMessage: errorMessage,
	}
}

// Error is a domain error carrying an HTTP status code, a category label and,
// for validation failures, the full ordered violation sequence.
type Error struct {
	Code       int
	Label      string
	Message    string
	Violations []Violation
}

func (e *Error) Error() string {
	if len(e.Violations) > 0 {
		return fmt.Sprintf("%s: %d validation errors", e.Label, len(e.Violations))
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Label, e.Message)
	}
	return e.Label
}

// NewValidation wraps the ordered violation sequence of one validation pass.
func NewValidation(violations []Violation) *Error {
	return &Error{
		Code:       http.StatusBadRequest,
		Label:      "Bad Request",
		Violations: violations,
	}
}

// NewBadRequest creates a 400 error that is not schema-shaped.
func NewBadRequest(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Label: "Bad Request", Message: message}
}

// NewNotFound creates a 404 error with the given message.
func NewNotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Label: "Not Found", Message: message}
}

// NewNotImplemented creates a 501 error, used as the catch-all for unmatched routes.
func NewNotImplemented(message string) *Error {
	return &Error{Code: http.StatusNotImplemented, Label: "Not Implemented", Message: message}
}

// From returns err as an *Error, wrapping unknown errors as 500 Internal Error.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: http.StatusInternalServerError, Label: "Internal Error"}
}
