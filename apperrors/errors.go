package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// AppError is the typed error the services surface to the HTTP layer.
// Callers match on Code via errors.Is against the sentinel values below.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

var (
	ErrValidation       = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrCapacityExceeded = &AppError{Code: "SLOT_FULL", Message: "Slot is full", StatusCode: http.StatusConflict}
	ErrConflict         = &AppError{Code: "CONFLICT", Message: "Conflicting update", StatusCode: http.StatusConflict}
	ErrUnauthorized     = &AppError{Code: "UNAUTHORIZED", Message: "Unauthorized", StatusCode: http.StatusUnauthorized}
	ErrInternal         = &AppError{Code: "INTERNAL_ERROR", Message: "Internal server error", StatusCode: http.StatusInternalServerError}
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches any AppError carrying the same code, so a customized message
// still compares equal to its sentinel.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Validation returns a bad-input error with a caller-facing message.
func Validation(format string, args ...any) *AppError {
	return &AppError{
		Code:       ErrValidation.Code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: ErrValidation.StatusCode,
	}
}

// NotFound returns a missing-resource error naming the resource.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       ErrNotFound.Code,
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: ErrNotFound.StatusCode,
	}
}

// Conflict returns an invariant-violation error with a caller-facing message.
func Conflict(message string) *AppError {
	return &AppError{
		Code:       ErrConflict.Code,
		Message:    message,
		StatusCode: ErrConflict.StatusCode,
	}
}

// Wrap attaches an underlying cause to a sentinel without mutating it.
func Wrap(sentinel *AppError, err error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Err:        err,
	}
}

// FromBinding converts a gin body-binding failure into a validation error,
// flattening go-playground field errors into one readable message.
func FromBinding(err error) *AppError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Wrap(ErrValidation, err)
	}
	msg := "validation failed"
	for i, fe := range fieldErrs {
		if i == 0 {
			msg = fmt.Sprintf("field %s failed on '%s'", fe.Field(), fe.Tag())
		} else {
			msg += fmt.Sprintf("; field %s failed on '%s'", fe.Field(), fe.Tag())
		}
	}
	return Validation("%s", msg)
}
