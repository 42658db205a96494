// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type jwtCodec struct {
	issuer   string
	duration time.Duration
	signKey  []byte

	now func() time.Time
}

// NewJWTCodec returns a [TokenCodec] that signs HMAC-SHA256 JWTs carrying
// the standard iss, sub, iat, exp and jti claims.
func NewJWTCodec(issuer string, duration time.Duration, signKey string) TokenCodec {
	return &jwtCodec{
		issuer:   issuer,
		duration: duration,
		signKey:  []byte(signKey),
		now:      time.Now,
	}
}

// Sign creates a signed token for userID.
//
// The jti claim is random so two tokens issued within the same second for
// the same user are still distinct strings.
func (j *jwtCodec) Sign(userID string) (models.Token, error) {
	if j.issuer == "" || j.duration <= 0 || len(j.signKey) == 0 || userID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := j.now()
	claims := &jwt.RegisteredClaims{
		Issuer:    j.issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(j.duration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// Verify validates tokenString and extracts its subject.
//
// Expired tokens yield [ErrTokenExpired]; every other failure (bad
// signature, wrong issuer, wrong algorithm, malformed input, empty subject)
// yields [ErrInvalidToken].
func (j *jwtCodec) Verify(tokenString string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return j.signKey, nil
	},
		jwt.WithIssuer(j.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	claims.UserID = userID

	return *claims, nil
}
