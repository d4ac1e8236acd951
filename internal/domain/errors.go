// Package domain holds the error taxonomy shared by the aggregates and value
// objects under internal/domain/...
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies aggregate and value-object failures.
type ErrorCode string

const (
	// CodeValidation marks rejected raw input (value-object rules, missing fields).
	CodeValidation ErrorCode = "validation"
	// CodeNotFound marks a lookup that matched nothing.
	CodeNotFound ErrorCode = "not_found"
	// CodeConflict marks an illegal state transition.
	CodeConflict ErrorCode = "conflict"
	// CodeInvariant marks a broken aggregate invariant.
	CodeInvariant ErrorCode = "invariant"
)

// Error is the canonical domain failure. Field is set for validation errors
// and names the offending input.
type Error struct {
	Code    ErrorCode
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	field := strings.TrimSpace(e.Field)
	msg := strings.TrimSpace(e.Message)
	if field != "" {
		return fmt.Sprintf("%s: %s (%s)", field, msg, e.Code)
	}
	if msg != "" {
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Cause }

// Validation reports that raw input for field broke the field's rule.
func Validation(field, message string) error {
	return &Error{Code: CodeValidation, Field: field, Message: message}
}

// NotFound reports a missing entity.
func NotFound(message string) error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Conflict reports an illegal state transition.
func Conflict(message string) error {
	return &Error{Code: CodeConflict, Message: message}
}

// Invariant reports a broken aggregate invariant.
func Invariant(message string) error {
	return &Error{Code: CodeInvariant, Message: message}
}

// IsCode checks whether err (or a wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var domErr *Error
	if !errors.As(err, &domErr) {
		return false
	}
	return domErr.Code == code
}

// CodeOf extracts the domain error code when available.
func CodeOf(err error) ErrorCode {
	var domErr *Error
	if !errors.As(err, &domErr) {
		return ""
	}
	return domErr.Code
}
