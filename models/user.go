// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Subscription is the tier of a user account.
type Subscription string

const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

// Subscriptions lists every accepted subscription tier in display order.
var Subscriptions = []Subscription{SubscriptionStarter, SubscriptionPro, SubscriptionBusiness}

// IsValid reports whether s is one of the known tiers.
func (s Subscription) IsValid() bool {
	for _, known := range Subscriptions {
		if s == known {
			return true
		}
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 string).
	UserID string `json:"-"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password, never plaintext.
	Password string `json:"-"`

	// Subscription is the account tier, starter by default.
	Subscription Subscription `json:"subscription"`

	// Token is the single active session token. Login overwrites it,
	// logout clears it.
	Token *string `json:"-"`

	// AvatarURL references the user's avatar: a gravatar URL right after
	// registration, a path under the public avatars dir after an upload.
	AvatarURL string `json:"avatarURL"`

	// Verify reports whether the email address was confirmed.
	Verify bool `json:"verify"`

	// VerificationToken is present while the email is unverified and
	// cleared on verification.
	VerificationToken *string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the short projection returned by register, login and
// current-user endpoints.
func (u User) Public() UserResponse {
	return UserResponse{
		Email:        u.Email,
		Subscription: u.Subscription,
	}
}

// Profile returns the full projection returned after profile updates.
func (u User) Profile() UserProfileResponse {
	return UserProfileResponse{
		Email:        u.Email,
		Subscription: u.Subscription,
		AvatarURL:    u.AvatarURL,
		Verify:       u.Verify,
	}
}

// UserRequest is the full-profile schema used by register and login.
type UserRequest struct {
	Email        string       `json:"email" validate:"required,email_pattern"`
	Password     string       `json:"password" validate:"required,min=6"`
	Subscription Subscription `json:"subscription,omitempty" validate:"omitempty,subscription"`
	Token        string       `json:"token,omitempty"`
	AvatarURL    string       `json:"avatarURL,omitempty"`
}

// SubscriptionRequest is the subscription-only schema used by PATCH /users.
type SubscriptionRequest struct {
	Subscription Subscription `json:"subscription" validate:"required,subscription"`
}

// VerifyEmailRequest is the body of a verification email resend request.
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required" msg:"missing required field email"`
}
