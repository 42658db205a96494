// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserResponse is the public projection of a user: never the password
// hash, session token or verification token.
type UserResponse struct {
	Email        string       `json:"email"`
	Subscription Subscription `json:"subscription"`
}

// UserProfileResponse is returned after a subscription change.
type UserProfileResponse struct {
	Email        string       `json:"email"`
	Subscription Subscription `json:"subscription"`
	AvatarURL    string       `json:"avatarURL"`
	Verify       bool         `json:"verify"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AvatarResponse is the body of a successful avatar update.
type AvatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}

// MessageResponse is the body of every error response and of the few
// endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse exposes build metadata of the running server.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
