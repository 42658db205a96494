// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// logMailer writes emails to the log instead of delivering them. Used in
// development where no SES identity exists.
type logMailer struct {
	logger *logger.Logger
}

func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, email models.Email) error {
	if email.To == "" {
		return ErrEmptyRecipient
	}

	logger.FromContext(ctx).Info().
		Str("func", "*logMailer.Send").
		Str("to", email.To).
		Str("subject", email.Subject).
		Str("html", email.HTML).
		Msg("email not delivered: no sender configured")

	return nil
}
