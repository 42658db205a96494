// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the contacts HTTP API.
//
// [ContactsAPI] hides the wire format: request bodies, the bearer token and
// the mapping of error statuses to the sentinels in errors.go, so callers can
// use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-contacts-keeper/models"
)

// ContactsAPI is a client of the contacts server. After a successful Login
// the token is kept and attached to every authenticated call.
type ContactsAPI interface {
	// SetToken replaces the bearer token used for authenticated calls.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "".
	Token() string

	Register(ctx context.Context, request models.UserRequest) (models.UserResponse, error)
	Verify(ctx context.Context, verificationToken string) error
	ResendVerification(ctx context.Context, email string) error

	// Login stores the returned token via SetToken.
	Login(ctx context.Context, request models.UserRequest) (models.LoginResponse, error)

	// Logout forgets the stored token once the server accepted the call.
	Logout(ctx context.Context) error

	Current(ctx context.Context) (models.UserResponse, error)
	UpdateSubscription(ctx context.Context, subscription models.Subscription) (models.UserProfileResponse, error)

	// UploadAvatar sends image as the "avatar" multipart file.
	UploadAvatar(ctx context.Context, filename string, image io.Reader) (string, error)

	ListContacts(ctx context.Context, query ContactsQuery) ([]models.Contact, error)
	GetContact(ctx context.Context, contactID string) (models.Contact, error)
	CreateContact(ctx context.Context, request models.ContactRequest) (models.Contact, error)
	UpdateContact(ctx context.Context, contactID string, request models.ContactRequest) (models.Contact, error)
	SetFavorite(ctx context.Context, contactID string, favorite bool) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID string) error

	Version(ctx context.Context) (models.VersionResponse, error)
}

// ContactsQuery narrows ListContacts. Zero values are not sent, so the
// server defaults apply.
type ContactsQuery struct {
	Page     uint64
	Limit    uint64
	Favorite *bool
}
