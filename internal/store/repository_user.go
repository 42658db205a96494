// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Password,
		&user.Subscription,
		&user.Token,
		&user.AvatarURL,
		&user.Verify,
		&user.VerificationToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// CreateUser persists a new user record and returns the canonical database
// representation of the account (RETURNING clause).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Constraint violations → [ErrStorageValidation].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID,
		user.Email,
		user.Password,
		user.Subscription,
		user.AvatarURL,
		user.VerificationToken,
	)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, translateError(err, ErrUserNotFound)
	}

	return created, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) FindUserByVerificationToken(ctx context.Context, verificationToken string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByVerificationToken", findUserByVerificationToken, verificationToken)
}

// findOne runs a single-row user lookup. An empty result is
// [ErrUserNotFound]; a malformed id is [ErrInvalidID].
func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		err = translateError(err, ErrUserNotFound)
		log.Err(err).Str("func", funcName).Msg("user lookup failed")
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) MarkUserVerified(ctx context.Context, userID string) error {
	return r.exec(ctx, "*userRepository.MarkUserVerified", markUserVerified, userID)
}

func (r *userRepository) UpdateToken(ctx context.Context, userID string, token *string) error {
	return r.exec(ctx, "*userRepository.UpdateToken", updateUserToken, userID, token)
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string) error {
	return r.exec(ctx, "*userRepository.UpdateAvatar", updateUserAvatar, userID, avatarURL)
}

// UpdateSubscription changes the tier and returns the updated user.
func (r *userRepository) UpdateSubscription(ctx context.Context, userID string, subscription models.Subscription) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, updateUserSubscription, userID, subscription))
	if err != nil {
		err = translateError(err, ErrUserNotFound)
		log.Err(err).Str("func", "*userRepository.UpdateSubscription").Msg("error updating subscription")
		return models.User{}, err
	}

	return user, nil
}

// exec runs a single-row UPDATE and reports [ErrUserNotFound] when no row
// was affected.
func (r *userRepository) exec(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = translateError(err, ErrUserNotFound)
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", funcName).Msg("no user was updated")
		return ErrUserNotFound
	}

	return nil
}
