// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user cannot be inserted
	// because another account already uses the same email.
	ErrEmailAlreadyExists = errors.New("Email in use")

	// ErrUserNotFound is returned when no user matches the lookup key
	// (id, email or verification token).
	ErrUserNotFound = errors.New("User not found")

	// ErrContactNotFound is returned when no contact of the given owner has
	// the requested id.
	ErrContactNotFound = errors.New("Not found")

	// ErrInvalidID is returned when an id cannot be interpreted by the
	// database (for example a malformed UUID).
	ErrInvalidID = errors.New("Not found")

	// ErrStorageValidation is returned when the database rejects a value
	// through a NOT NULL, CHECK or length constraint.
	ErrStorageValidation = errors.New("stored value violates a constraint")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason no domain error describes.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrSavingAvatar is returned when an avatar cannot be written to the
	// configured avatar storage.
	ErrSavingAvatar = errors.New("failed to save avatar")
)
