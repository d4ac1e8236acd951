// Package valueobject implements the validated domain primitives. Every type
// follows the same smart-constructor convention: the only way to obtain an
// instance is the New* factory, which normalizes the raw input, runs the
// type's rule, and fails with a domain validation error carrying the field
// name. Instances are immutable and compare by wrapped value, so downstream
// code can take the presence of a typed value as proof of validity.
package valueobject

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/avenlyn/commerce-backend/internal/domain"
)

// parseString applies the shared string rule: required, then matched against
// the type's pattern. The returned value is exactly what was matched, so any
// normalization must happen before the call.
func parseString(field, raw string, re *regexp.Regexp, msg string) (string, error) {
	if raw == "" {
		return "", domain.Validation(field, "must not be empty")
	}
	if !re.MatchString(raw) {
		return "", domain.Validation(field, msg)
	}
	return raw, nil
}

// parseUUID rejects the zero UUID; every identifier type shares this rule.
func parseUUID(field string, raw uuid.UUID) (uuid.UUID, error) {
	if raw == uuid.Nil {
		return uuid.Nil, domain.Validation(field, "must not be the zero UUID")
	}
	return raw, nil
}
