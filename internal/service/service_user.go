// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// AvatarSize is the edge length in pixels of every stored avatar.
const AvatarSize = 250

type userService struct {
	userRepository store.UserRepository
	avatarStorage  store.AvatarStorage

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, avatarStorage store.AvatarStorage, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		avatarStorage:  avatarStorage,
		logger:         logger,
	}
}

func (u *userService) UpdateSubscription(ctx context.Context, userID string, subscription models.Subscription) (models.User, error) {
	user, err := u.userRepository.UpdateSubscription(ctx, userID, subscription)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateSubscription").Str("user_id", userID).Msg("subscription update failed")
		return models.User{}, fmt.Errorf("subscription update failed: %w", err)
	}

	return user, nil
}

// UpdateAvatar reads the uploaded temp file, scales it to AvatarSize square,
// stores it as <userID><ext> and saves the reference on the user. The temp
// file itself is left to the upload middleware.
func (u *userService) UpdateAvatar(ctx context.Context, userID string, file models.UploadedFile) (string, error) {
	log := logger.FromContext(ctx).With().Str("func", "*userService.UpdateAvatar").Str("user_id", userID).Logger()

	src, err := os.Open(file.TempPath)
	if err != nil {
		log.Err(err).Str("path", file.TempPath).Msg("error opening uploaded file")
		return "", fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer src.Close()

	data, ext, err := utils.ResizeImage(src, AvatarSize)
	if err != nil {
		if errors.Is(err, utils.ErrDecodeImage) {
			log.Debug().Err(err).Str("file", file.OriginalFilename).Msg("uploaded file is not a supported image")
			return "", fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
		}
		log.Err(err).Msg("error resizing avatar")
		return "", fmt.Errorf("error resizing avatar: %w", err)
	}

	avatarURL, err := u.avatarStorage.SaveAvatar(ctx, userID+ext, data)
	if err != nil {
		log.Err(err).Msg("error saving avatar")
		return "", fmt.Errorf("error saving avatar: %w", err)
	}

	if err = u.userRepository.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		log.Err(err).Msg("error updating avatar reference")
		return "", fmt.Errorf("error updating avatar reference: %w", err)
	}

	return avatarURL, nil
}
