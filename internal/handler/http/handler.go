// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// Handler owns every HTTP route and middleware of the API.
type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *metrics

	// publicDir is served under /avatars.
	publicDir string
	// tempDir receives multipart uploads until the handler consumes them.
	tempDir string

	requestTimeout time.Duration
	allowedOrigins []string

	logger *logger.Logger
}

// NewHandler builds a Handler. Every request schema is compiled here, so a
// broken validation tag panics at startup.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	validator := validators.NewSchemaValidator()
	validators.MustCompile(validator,
		models.UserRequest{},
		models.SubscriptionRequest{},
		models.VerifyEmailRequest{},
		models.ContactRequest{},
		models.FavoriteRequest{},
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validator,
		metrics:        newMetrics(),
		publicDir:      cfg.Storage.Files.PublicDir,
		tempDir:        cfg.Storage.Files.TempDir,
		requestTimeout: cfg.Server.RequestTimeout,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         logger,
	}
}
