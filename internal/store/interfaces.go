// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for users, contacts and avatar files.
//
// Users and contacts live in PostgreSQL and are accessed through
// database/sql with the pgx driver. Driver errors are translated into the
// sentinels declared in errors.go so that upper layers never inspect
// PostgreSQL codes themselves.
package store

import (
	"context"

	"github.com/MKhiriev/go-contacts-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row.
	// A taken email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByVerificationToken(ctx context.Context, verificationToken string) (models.User, error)

	// MarkUserVerified sets verify and clears the verification token in a
	// single statement.
	MarkUserVerified(ctx context.Context, userID string) error

	// UpdateToken stores the session token; nil clears it.
	UpdateToken(ctx context.Context, userID string, token *string) error

	UpdateSubscription(ctx context.Context, userID string, subscription models.Subscription) (models.User, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
}

// ContactRepository persists contacts. Every method is scoped by owner: a
// contact of another owner behaves exactly like a missing one.
type ContactRepository interface {
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	GetContact(ctx context.Context, owner, contactID string) (models.Contact, error)
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)

	// UpdateContact overwrites name, email and phone; favorite changes only
	// when update.Favorite is set.
	UpdateContact(ctx context.Context, owner, contactID string, update models.ContactRequest) (models.Contact, error)
	UpdateFavorite(ctx context.Context, owner, contactID string, favorite bool) (models.Contact, error)
	DeleteContact(ctx context.Context, owner, contactID string) error
}

// AvatarStorage stores processed avatar images.
type AvatarStorage interface {
	// SaveAvatar writes data under name, replacing any previous file with
	// the same name, and returns the public reference of the stored file.
	SaveAvatar(ctx context.Context, name string, data []byte) (string, error)
}
