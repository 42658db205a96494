// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides request schema validation for the HTTP layer.
//
// Schemas are plain request structs from the models package annotated with
// `validate:"..."` tags. A single [Validator] checks any of them and reports
// every failing field at once as a [*ValidationError].
//
// Usage patterns:
//  1. Build one Validator at startup with [NewSchemaValidator] and call
//     [MustCompile] with every schema so a broken tag fails the boot.
//  2. Decode request bodies with [DecodeAndValidate] before any side effect.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
