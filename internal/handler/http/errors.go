// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("Not authorized")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not "Bearer <token>" with a non-empty token.
	ErrInvalidAuthorizationHeader = errors.New("Not authorized")
)

// Request shape errors detected before any service call.
var (
	ErrInvalidPagination = errors.New("page and limit must be positive integers")
	ErrInvalidFavorite   = errors.New("favorite must be a boolean")
	ErrMissingFile       = errors.New("missing file")
	ErrTooManyFiles      = errors.New("only one file is accepted")
)
