// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
)

// Storages bundles every persistence dependency of the service layer.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
	AvatarStorage     AvatarStorage
}

// NewStorages wires the PostgreSQL repositories around db together with
// the avatar storage selected by cfg.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	avatars, err := NewAvatarStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
		AvatarStorage:     avatars,
	}, nil
}

// NewAvatarStorage returns the S3 storage when a bucket is configured and
// the local public directory otherwise.
func NewAvatarStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) (AvatarStorage, error) {
	if cfg.S3.Bucket != "" {
		return NewS3AvatarStorage(ctx, cfg.S3, logger)
	}

	return NewFileAvatarStorage(cfg.Files.PublicDir, logger)
}
