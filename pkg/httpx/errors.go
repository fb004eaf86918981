package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
)

// StatusError is an error whose message is safe to return to the client
// with the given HTTP status.
type StatusError interface {
	error
	StatusCode() int
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the StatusError produced by this package.
type Error struct {
	Status  int
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string             { return e.Message }
func (e *Error) StatusCode() int           { return e.Status }
func (e *Error) FieldErrors() []FieldError { return e.Fields }

// FieldErrorer is implemented by StatusErrors that carry per-field details.
type FieldErrorer interface {
	FieldErrors() []FieldError
}

func BadRequest(msg string) *Error   { return &Error{Status: http.StatusBadRequest, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Status: http.StatusUnauthorized, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Status: http.StatusForbidden, Message: msg} }
func NotFound(msg string) *Error     { return &Error{Status: http.StatusNotFound, Message: msg} }

// ErrValidation is the message used for every request validation failure.
const ErrValidation = "Validation failed"

// ValidationFailed converts ozzo-validation errors into a 400 Error listing
// each offending field. Internal validation errors and anything else are
// returned unchanged.
func ValidationFailed(err error) error {
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Status: http.StatusBadRequest, Message: ErrValidation}
	flattenValidation("", verrs, &out.Fields)
	sort.Slice(out.Fields, func(i, j int) bool { return out.Fields[i].Field < out.Fields[j].Field })
	return out
}

func flattenValidation(prefix string, verrs validation.Errors, out *[]FieldError) {
	for field, err := range verrs {
		if err == nil {
			continue
		}
		name := field
		if prefix != "" {
			name = fmt.Sprintf("%s.%s", prefix, field)
		}

		var nested validation.Errors
		if errors.As(err, &nested) {
			flattenValidation(name, nested, out)
			continue
		}
		*out = append(*out, FieldError{Field: name, Message: err.Error()})
	}
}
