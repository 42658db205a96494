// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication failures. The texts are returned to clients verbatim.
var (
	ErrWrongCredentials = errors.New("Email or password is wrong")
	ErrEmailNotVerified = errors.New("Email is not verified")

	// ErrTokenIsExpiredOrInvalid covers every token the codec rejects and
	// every token whose subject no longer exists.
	ErrTokenIsExpiredOrInvalid = errors.New("Not authorized")

	// ErrSessionRevoked is returned in strict-session mode when the presented
	// token is not the user's current session token.
	ErrSessionRevoked = errors.New("Not authorized")
)

var (
	ErrAlreadyVerified  = errors.New("Verification has already been passed")
	ErrUnsupportedImage = errors.New("Unsupported image format")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
