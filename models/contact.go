// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Contact is a single phone book entry owned by a user.
type Contact struct {
	ContactID string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Favorite  bool   `json:"favorite"`

	// Owner is the UserID of the user who created the contact.
	Owner string `json:"owner"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactRequest is the schema for contact create and full update.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email_pattern"`
	Phone    string `json:"phone"`
	Favorite *bool  `json:"favorite,omitempty"`
}

// FavoriteRequest is the schema for the favorite-only patch. Favorite is a
// pointer so that an absent key can be told apart from false.
type FavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required" msg:"missing field favorite"`
}

// MaxContactsLimit is the largest page size a contacts listing returns.
const MaxContactsLimit uint64 = 100

// ContactFilter selects a page of a single owner's contacts.
type ContactFilter struct {
	// Owner is required; contacts are never listed across owners.
	Owner string

	// Page is 1-based.
	Page uint64

	// Limit is the page size.
	Limit uint64

	// Favorite, when non-nil, keeps only contacts with the same flag.
	Favorite *bool
}

// Offset returns the number of records skipped before the page starts.
// It saturates at math.MaxInt64; see [ContactFilter.PastEnd].
func (f ContactFilter) Offset() uint64 {
	if f.Page == 0 {
		return 0
	}
	if f.PastEnd() {
		return math.MaxInt64
	}
	return (f.Page - 1) * f.Limit
}

// PastEnd reports whether the page starts beyond the largest offset storage
// can address. Such a page is always empty.
func (f ContactFilter) PastEnd() bool {
	return f.Page > 1 && f.Limit != 0 && f.Page-1 > math.MaxInt64/f.Limit
}
