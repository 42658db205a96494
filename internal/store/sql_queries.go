// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contacts-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `user_id, email, password, subscription, token, avatar_url, verify, verification_token, created_at, updated_at`

const (
	createUser = `INSERT INTO users (user_id, email, password, subscription, avatar_url, verification_token)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	findUserByVerificationToken = `SELECT ` + userColumns + `
    FROM users
    WHERE verification_token = $1;`

	markUserVerified = `UPDATE users
    SET verify = TRUE, verification_token = NULL, updated_at = NOW()
    WHERE user_id = $1;`

	updateUserToken = `UPDATE users
    SET token = $2, updated_at = NOW()
    WHERE user_id = $1;`

	updateUserSubscription = `UPDATE users
    SET subscription = $2, updated_at = NOW()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	updateUserAvatar = `UPDATE users
    SET avatar_url = $2, updated_at = NOW()
    WHERE user_id = $1;`
)

const contactsTable = "contacts"

var contactColumns = []string{"contact_id", "owner", "name", "email", "phone", "favorite", "created_at", "updated_at"}

// contactListColumns is the listing projection: contactColumns without timestamps.
var contactListColumns = []string{"contact_id", "owner", "name", "email", "phone", "favorite"}

// psql renders $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningContact() string {
	return "RETURNING " + strings.Join(contactColumns, ", ")
}

// buildListContactsQuery selects one page of filter.Owner's contacts in
// creation order. Ties on created_at are broken by the time-ordered id.
func buildListContactsQuery(filter models.ContactFilter) (string, []any, error) {
	where := sq.Eq{"owner": filter.Owner}
	if filter.Favorite != nil {
		where["favorite"] = *filter.Favorite
	}

	query, args, err := psql.
		Select(contactListColumns...).
		From(contactsTable).
		Where(where).
		OrderBy("created_at", "contact_id").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetContactQuery(owner, contactID string) (string, []any, error) {
	query, args, err := psql.
		Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"contact_id": contactID, "owner": owner}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateContactQuery(contact models.Contact) (string, []any, error) {
	query, args, err := psql.
		Insert(contactsTable).
		Columns("contact_id", "owner", "name", "email", "phone", "favorite").
		Values(contact.ContactID, contact.Owner, contact.Name, contact.Email, contact.Phone, contact.Favorite).
		Suffix(returningContact()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateContactQuery overwrites the editable fields. favorite is only
// touched when the request carries it.
func buildUpdateContactQuery(owner, contactID string, update models.ContactRequest) (string, []any, error) {
	builder := psql.
		Update(contactsTable).
		Set("name", update.Name).
		Set("email", update.Email).
		Set("phone", update.Phone)

	if update.Favorite != nil {
		builder = builder.Set("favorite", *update.Favorite)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"contact_id": contactID, "owner": owner}).
		Suffix(returningContact()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateFavoriteQuery(owner, contactID string, favorite bool) (string, []any, error) {
	query, args, err := psql.
		Update(contactsTable).
		Set("favorite", favorite).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"contact_id": contactID, "owner": owner}).
		Suffix(returningContact()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteContactQuery(owner, contactID string) (string, []any, error) {
	query, args, err := psql.
		Delete(contactsTable).
		Where(sq.Eq{"contact_id": contactID, "owner": owner}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
