// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing and session token primitives
// used by the authentication service.
package crypto

import "github.com/MKhiriev/go-contacts-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher produces and checks one-way password digests.
type PasswordHasher interface {
	// Hash returns a salted digest of password suitable for storage.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash never
	// matches.
	Verify(password, hash string) bool
}

// TokenCodec issues and verifies signed session tokens.
type TokenCodec interface {
	// Sign issues a token whose subject is userID.
	Sign(userID string) (models.Token, error)

	// Verify checks signature, issuer and expiry of tokenString and returns
	// the decoded token with UserID populated.
	Verify(tokenString string) (models.Token, error)
}
