// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "go-contacts-keeper"
	testSignKey = "test-sign-key"
	testUserID  = "0192a4b4-7a3c-7cde-8f00-000000000001"
)

func TestJWTCodec_SignAndVerify(t *testing.T) {
	codec := NewJWTCodec(testIssuer, time.Hour, testSignKey)

	issued, err := codec.Sign(testUserID)
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)
	assert.Equal(t, testUserID, issued.UserID)

	parsed, err := codec.Verify(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
	assert.Equal(t, testIssuer, parsed.Issuer)
	assert.Equal(t, issued.SignedString, parsed.String())
	require.NotNil(t, parsed.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.ExpiresAt.Time, 5*time.Second)
}

func TestJWTCodec_TokensAreDistinct(t *testing.T) {
	codec := NewJWTCodec(testIssuer, time.Hour, testSignKey)

	first, err := codec.Sign(testUserID)
	require.NoError(t, err)
	second, err := codec.Sign(testUserID)
	require.NoError(t, err)

	assert.NotEqual(t, first.SignedString, second.SignedString)
}

func TestJWTCodec_Sign_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		codec  TokenCodec
		userID string
	}{
		{name: "empty issuer", codec: NewJWTCodec("", time.Hour, testSignKey), userID: testUserID},
		{name: "zero duration", codec: NewJWTCodec(testIssuer, 0, testSignKey), userID: testUserID},
		{name: "empty key", codec: NewJWTCodec(testIssuer, time.Hour, ""), userID: testUserID},
		{name: "empty user", codec: NewJWTCodec(testIssuer, time.Hour, testSignKey), userID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.codec.Sign(tt.userID)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestJWTCodec_Verify_Expired(t *testing.T) {
	codec := NewJWTCodec(testIssuer, time.Minute, testSignKey).(*jwtCodec)
	codec.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	issued, err := codec.Sign(testUserID)
	require.NoError(t, err)

	codec.now = time.Now
	_, err = codec.Verify(issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTCodec_Verify_Invalid(t *testing.T) {
	codec := NewJWTCodec(testIssuer, time.Hour, testSignKey)

	otherKey, err := NewJWTCodec(testIssuer, time.Hour, "other-key").Sign(testUserID)
	require.NoError(t, err)

	otherIssuer, err := NewJWTCodec("someone-else", time.Hour, testSignKey).Sign(testUserID)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: testUserID,
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "wrong key", token: otherKey.SignedString},
		{name: "wrong issuer", token: otherIssuer.SignedString},
		{name: "alg none", token: noneAlg},
		{name: "no subject", token: noSubject},
		{name: "no expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
