// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mailer delivers transactional emails: AWS SES v2 in production and
// a logging sender when no sender address is configured.
package mailer

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends a single email.
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}

var (
	// ErrSendingEmail wraps every delivery failure.
	ErrSendingEmail = errors.New("error sending email")
	// ErrEmptyRecipient is returned for an email without a recipient.
	ErrEmptyRecipient = errors.New("email recipient is empty")
)

// New returns the SES mailer when cfg.From is set and the logging mailer
// otherwise.
func New(ctx context.Context, cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if cfg.From == "" {
		logger.Warn().Str("func", "mailer.New").Msg("MAIL_FROM is empty, emails will only be logged")
		return NewLogMailer(logger), nil
	}

	return NewSESMailer(ctx, cfg, logger)
}
