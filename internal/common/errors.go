// Package common defines shared sentinel errors for the top-up pipeline.
// Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Record-validation errors.
	ErrMissingField = errors.New("missing required field")
	ErrInvalidValue = errors.New("invalid value")

	// An active user references a company id absent from the index.
	ErrUnknownCompany = errors.New("unknown company")
)

// MissingFieldError reports a record that lacks a field required at its
// point of use. The record's full structure is included so the offending
// input can be located.
func MissingFieldError(kind, record, field string) error {
	return fmt.Errorf("%s %s: %w: %s", kind, record, ErrMissingField, field)
}

// InvalidValueError reports a record whose field violates a value
// constraint (e.g. a negative amount).
func InvalidValueError(kind, record, constraint string) error {
	return fmt.Errorf("%s %s: %w: %s", kind, record, ErrInvalidValue, constraint)
}
