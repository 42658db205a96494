// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidJSON     = errors.New("invalid JSON body")
)

// FieldError describes one failing field of a request body.
type FieldError struct {
	// Field is the JSON name of the field.
	Field string

	// Message is the human readable reason, already prefixed with the field
	// name unless the schema overrides it.
	Message string
}

// ValidationError aggregates every failing field of a single request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}

	return strings.Join(messages, ". ")
}

// newValidationError builds a single-field error.
func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
