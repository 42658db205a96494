// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/crypto"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/mailer"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ContactService ContactService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	mailer mailer.Mailer,
	cfg config.App,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)
	tokens := crypto.NewJWTCodec(cfg.TokenIssuer, cfg.TokenDuration, cfg.TokenSignKey)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, tokens, mailer, ids, cfg, logger),
		UserService:    NewUserService(storages.UserRepository, storages.AvatarStorage, logger),
		ContactService: NewContactService(storages.ContactRepository, ids, logger),
		AppInfoService: appInfo,
	}, nil
}
