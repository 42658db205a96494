// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// sesSendEmailAPI is the part of *sesv2.Client the mailer uses.
type sesSendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesMailer struct {
	client sesSendEmailAPI
	from   string
	logger *logger.Logger
}

// NewSESMailer builds an SES v2 client. Static credentials are used when
// both halves are configured, the default AWS chain otherwise.
func NewSESMailer(ctx context.Context, cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Err(err).Str("func", "NewSESMailer").Msg("failed to load AWS config")
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.Info().Str("from", cfg.From).Str("region", cfg.Region).Msg("ses mailer created")
	return newSESMailer(sesv2.NewFromConfig(awsCfg), cfg.From, logger), nil
}

func newSESMailer(client sesSendEmailAPI, from string, logger *logger.Logger) *sesMailer {
	return &sesMailer{client: client, from: from, logger: logger}
}

func (m *sesMailer) Send(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	if email.To == "" {
		return ErrEmptyRecipient
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{email.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(email.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(email.HTML),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		log.Err(err).Str("func", "*sesMailer.Send").Str("to", email.To).Msg("error sending email")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Info().Str("func", "*sesMailer.Send").Str("to", email.To).Str("message_id", aws.ToString(out.MessageId)).Msg("email sent")
	return nil
}
