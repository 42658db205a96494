// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3PutObjectAPI is the part of *s3.Client the avatar storage uses.
type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3AvatarStorage uploads avatars to an S3 bucket under the avatars/ prefix.
type s3AvatarStorage struct {
	client  s3PutObjectAPI
	bucket  string
	baseURL string
	logger  *logger.Logger
}

// NewS3AvatarStorage builds an S3 client from the default AWS credential
// chain and the configured region.
func NewS3AvatarStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (AvatarStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		logger.Err(err).Str("func", "NewS3AvatarStorage").Msg("failed to load AWS config")
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("s3 avatar storage created")
	return newS3AvatarStorage(s3.NewFromConfig(awsCfg), cfg, logger), nil
}

func newS3AvatarStorage(client s3PutObjectAPI, cfg config.S3, logger *logger.Logger) *s3AvatarStorage {
	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &s3AvatarStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (s *s3AvatarStorage) SaveAvatar(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(AvatarsDir, path.Base(name))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentTypeByExt(path.Ext(key))),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3AvatarStorage.SaveAvatar").Str("key", key).Msg("error uploading avatar")
		return "", fmt.Errorf("%w: %w", ErrSavingAvatar, err)
	}

	return s.baseURL + "/" + key, nil
}

func contentTypeByExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
