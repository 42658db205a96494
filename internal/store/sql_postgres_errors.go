// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// usersEmailKey is the unique constraint PostgreSQL names for users.email.
const usersEmailKey = "users_email_key"

func postgresError(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

// translateError maps a driver error to a store sentinel. notFound is
// returned for an empty result set so each repository can name its own
// missing entity. See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
//   - sql.ErrNoRows                      → notFound
//   - 23505 on users_email_key            → ErrEmailAlreadyExists
//   - 22P02 invalid_text_representation   → ErrInvalidID
//   - 23502, 23514, 22001, 22023          → ErrStorageValidation
//   - anything else                       → wrapped ErrExecutingQuery
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	code, constraint := postgresError(err)
	switch code {
	case pgerrcode.UniqueViolation:
		if constraint == usersEmailKey {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	case pgerrcode.InvalidTextRepresentation:
		return ErrInvalidID
	case pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation,
		pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.InvalidParameterValue:
		return fmt.Errorf("%w: %w", ErrStorageValidation, err)
	case pgerrcode.ForeignKeyViolation:
		// contact owner vanished between auth and insert
		return ErrUserNotFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
