// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DecodeAndValidate decodes a single JSON object from r into dst and then
// validates it with v.
//
// Unknown keys and type mismatches are reported as [*ValidationError] naming
// the offending field; an empty or syntactically broken body wraps
// [ErrInvalidJSON].
func DecodeAndValidate(ctx context.Context, v Validator, r io.Reader, dst any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return decodeError(err)
	}

	if decoder.More() {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return v.Validate(ctx, dst)
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return fmt.Errorf("%w: body must be a JSON object", ErrInvalidJSON)
		}
		return newValidationError(field, fmt.Sprintf("%q must be a %s", field, jsonKind(typeErr.Type.Kind().String())))
	}

	// encoding/json reports unknown keys only through the message text
	if after, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		field := strings.Trim(after, `"`)
		return newValidationError(field, fmt.Sprintf("%q is not allowed", field))
	}

	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

func jsonKind(goKind string) string {
	switch goKind {
	case "bool":
		return "boolean"
	case "string":
		return "string"
	case "struct", "map":
		return "object"
	case "slice", "array":
		return "array"
	default:
		return "number"
	}
}
