package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single validation constraint violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Details []FieldError `json:"details,omitempty"`
	Err     error        `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound     = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrConflict     = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation   = New("VALIDATION_ERROR", http.StatusBadRequest, "Validation failed")
	ErrBusinessRule = New("BUSINESS_RULE_VIOLATION", http.StatusUnprocessableEntity, "business rule violation")
	ErrInternal     = New("INTERNAL_ERROR", http.StatusInternalServerError, "Internal server error")
	ErrCacheMiss    = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// BusinessRule builds a typed business-rule violation carrying the given
// message, letting the response layer dispatch on the code instead of the
// message text.
func BusinessRule(message string) *Error {
	return Clone(ErrBusinessRule, message)
}

// Validation builds a 400 error with one detail entry per field.
func Validation(details ...FieldError) *Error {
	e := Clone(ErrValidation, "")
	e.Details = details
	return e
}

// FromValidation expands validator.ValidationErrors into a single typed
// error collecting every constraint violation.
func FromValidation(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Wrap(err, ErrValidation.Code, ErrValidation.Status, ErrValidation.Message)
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fieldName(fe),
			Message: constraintMessage(fe),
		})
	}

	e := Clone(ErrValidation, "")
	e.Details = details
	e.Err = err
	return e
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace is Type.Field[...]; drop the type prefix.
	parts := strings.SplitN(fe.StructNamespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return fe.Field()
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
