// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/crypto"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/mailer"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/google/uuid"
)

const (
	verificationPath    = "/api/users/verify/"
	verificationSubject = "Verify email"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokens         crypto.TokenCodec
	mailer         mailer.Mailer
	ids            utils.IDGenerator

	// newVerificationToken returns the random token mailed to new users.
	newVerificationToken func() string

	// baseURL prefixes verification links.
	baseURL string

	// strictSessions requires the presented token to be the stored session
	// token, so that logout revokes it.
	strictSessions bool

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenCodec,
	mailer mailer.Mailer,
	ids utils.IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:       userRepository,
		hasher:               hasher,
		tokens:               tokens,
		mailer:               mailer,
		ids:                  ids,
		newVerificationToken: uuid.NewString,
		baseURL:              strings.TrimRight(cfg.BaseURL, "/"),
		strictSessions:       cfg.StrictSessions,
		logger:               logger,
	}
}

// Register creates an unverified account with a gravatar avatar and mails
// the verification link.
//
// Email uniqueness is left to the storage constraint, so a taken email
// surfaces as store.ErrEmailAlreadyExists. A failing email leaves the user
// stored.
func (a *authService) Register(ctx context.Context, request models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Register").Logger()

	passwordHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	subscription := request.Subscription
	if subscription == "" {
		subscription = models.SubscriptionStarter
	}

	verificationToken := a.newVerificationToken()
	user := models.User{
		UserID:            a.ids.Generate(),
		Email:             request.Email,
		Password:          passwordHash,
		Subscription:      subscription,
		AvatarURL:         utils.GravatarURL(request.Email),
		VerificationToken: &verificationToken,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.sendVerificationEmail(ctx, created.Email, verificationToken); err != nil {
		log.Err(err).Str("user_id", created.UserID).Msg("verification email was not sent")
		return models.User{}, err
	}

	return created, nil
}

// Verify marks the owner of verificationToken as verified. The token is
// cleared in the same statement so it works only once.
func (a *authService) Verify(ctx context.Context, verificationToken string) error {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Verify").Logger()

	user, err := a.userRepository.FindUserByVerificationToken(ctx, verificationToken)
	if err != nil {
		log.Err(err).Msg("user search by verification token failed")
		return fmt.Errorf("user search by verification token failed: %w", err)
	}

	if err = a.userRepository.MarkUserVerified(ctx, user.UserID); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("marking user verified failed")
		return fmt.Errorf("marking user verified failed: %w", err)
	}

	return nil
}

func (a *authService) ResendVerification(ctx context.Context, email string) error {
	log := logger.FromContext(ctx).With().Str("func", "*authService.ResendVerification").Logger()

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Verify {
		return ErrAlreadyVerified
	}
	if user.VerificationToken == nil {
		log.Error().Str("user_id", user.UserID).Msg("unverified user has no verification token")
		return fmt.Errorf("unverified user %s has no verification token", user.UserID)
	}

	return a.sendVerificationEmail(ctx, user.Email, *user.VerificationToken)
}

// Login returns a fresh signed token together with the user. The token
// replaces any previous session token.
//
// An unknown email and a wrong password are indistinguishable
// (ErrWrongCredentials). Verification is checked only after the password.
func (a *authService) Login(ctx context.Context, request models.UserRequest) (string, models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Login").Logger()

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("email", request.Email).Msg("no user with this email")
			return "", models.User{}, ErrWrongCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return "", models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, user.Password) {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return "", models.User{}, ErrWrongCredentials
	}

	if !user.Verify {
		return "", models.User{}, ErrEmailNotVerified
	}

	token, err := a.tokens.Sign(user.UserID)
	if err != nil {
		log.Err(err).Msg("token signing failed")
		return "", models.User{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.UpdateToken(ctx, user.UserID, &token.SignedString); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("storing session token failed")
		return "", models.User{}, fmt.Errorf("storing session token failed: %w", err)
	}
	user.Token = &token.SignedString

	return token.SignedString, user, nil
}

func (a *authService) Logout(ctx context.Context, userID string) error {
	if err := a.userRepository.UpdateToken(ctx, userID, nil); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Str("user_id", userID).Msg("clearing session token failed")
		return fmt.Errorf("clearing session token failed: %w", err)
	}

	return nil
}

// Authenticate verifies tokenString and loads its subject.
//
// Returns:
//   - ErrTokenIsExpiredOrInvalid for any token the codec rejects and for a
//     subject that no longer exists;
//   - ErrSessionRevoked in strict mode when the token is not the stored one;
//   - a wrapped storage error when the user cannot be loaded.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Authenticate").Logger()

	token, err := a.tokens.Verify(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrInvalidID) {
			log.Debug().Str("user_id", token.UserID).Msg("token subject does not exist")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if a.strictSessions && (user.Token == nil || *user.Token != tokenString) {
		return models.User{}, ErrSessionRevoked
	}

	return user, nil
}

func (a *authService) sendVerificationEmail(ctx context.Context, to, verificationToken string) error {
	link := a.baseURL + verificationPath + verificationToken

	err := a.mailer.Send(ctx, models.Email{
		To:      to,
		Subject: verificationSubject,
		HTML:    fmt.Sprintf(`<a target="_blank" href="%s">Click to verify email</a>`, link),
	})
	if err != nil {
		return fmt.Errorf("error sending verification email: %w", err)
	}

	return nil
}
