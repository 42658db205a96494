// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business operations behind the HTTP handlers:
// account lifecycle, profile updates and owner-scoped contact management.
package service

import (
	"context"

	"github.com/MKhiriev/go-contacts-keeper/models"
)

// AuthService covers registration, email verification and sessions.
type AuthService interface {
	// Register stores a new unverified user and sends the verification email.
	Register(ctx context.Context, request models.UserRequest) (models.User, error)

	// Verify confirms the email owning verificationToken.
	Verify(ctx context.Context, verificationToken string) error

	// ResendVerification sends the verification email again.
	ResendVerification(ctx context.Context, email string) error

	// Login checks credentials, issues a token and stores it as the user's
	// session token.
	Login(ctx context.Context, request models.UserRequest) (string, models.User, error)

	// Logout clears the session token of userID.
	Logout(ctx context.Context, userID string) error

	// Authenticate resolves a bearer token to its user.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UserService covers profile changes of an authenticated user.
type UserService interface {
	UpdateSubscription(ctx context.Context, userID string, subscription models.Subscription) (models.User, error)

	// UpdateAvatar normalises the uploaded image and returns its public
	// reference.
	UpdateAvatar(ctx context.Context, userID string, file models.UploadedFile) (string, error)
}

// ContactService manages contacts of a single owner.
type ContactService interface {
	List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	Get(ctx context.Context, owner, contactID string) (models.Contact, error)
	Create(ctx context.Context, owner string, request models.ContactRequest) (models.Contact, error)
	Update(ctx context.Context, owner, contactID string, request models.ContactRequest) (models.Contact, error)
	UpdateFavorite(ctx context.Context, owner, contactID string, favorite bool) (models.Contact, error)
	Delete(ctx context.Context, owner, contactID string) error
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
