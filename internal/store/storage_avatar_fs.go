// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
)

// AvatarsDir is the subdirectory of the public directory holding avatars.
const AvatarsDir = "avatars"

// fileAvatarStorage writes avatars into <publicDir>/avatars, which the HTTP
// server exposes as static files.
type fileAvatarStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileAvatarStorage creates <publicDir>/avatars if needed.
func NewFileAvatarStorage(publicDir string, logger *logger.Logger) (AvatarStorage, error) {
	dir := filepath.Join(publicDir, AvatarsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %w", ErrSavingAvatar, dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("file avatar storage created")
	return &fileAvatarStorage{dir: dir, logger: logger}, nil
}

// SaveAvatar writes data to a temporary sibling and renames it over the
// target so readers never observe a half-written image.
func (s *fileAvatarStorage) SaveAvatar(ctx context.Context, name string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	name = filepath.Base(name)
	target := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		log.Err(err).Str("func", "*fileAvatarStorage.SaveAvatar").Msg("error creating temp file")
		return "", fmt.Errorf("%w: %w", ErrSavingAvatar, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		log.Err(err).Str("func", "*fileAvatarStorage.SaveAvatar").Msg("error writing avatar")
		return "", fmt.Errorf("%w: %w", ErrSavingAvatar, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: %w", ErrSavingAvatar, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: %w", ErrSavingAvatar, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		log.Err(err).Str("func", "*fileAvatarStorage.SaveAvatar").Msg("error moving avatar into place")
		return "", fmt.Errorf("%w: %w", ErrSavingAvatar, err)
	}

	return path.Join(AvatarsDir, name), nil
}
