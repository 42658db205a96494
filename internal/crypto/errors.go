// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPassword = errors.New("empty password")

	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrInvalidToken       = errors.New("token is invalid")

	// ErrTokenExpired wraps ErrInvalidToken.
	ErrTokenExpired = fmt.Errorf("%w: expired", ErrInvalidToken)
)
