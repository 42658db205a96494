// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

const (
	defaultHTTPAddress    = "localhost:3000"
	defaultTokenIssuer    = "go-contacts-keeper"
	defaultTokenDuration  = time.Hour
	defaultBcryptCost     = 10
	defaultRequestTimeout = 30 * time.Second
	defaultLogLevel       = "debug"
	defaultS3Region       = "us-east-1"
)

// applyDefaults fills fields that no source provided.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = "http://" + cfg.Server.HTTPAddress
	}

	if cfg.Storage.Files.PublicDir == "" {
		cfg.Storage.Files.PublicDir = "public"
	}
	if cfg.Storage.Files.TempDir == "" {
		cfg.Storage.Files.TempDir = filepath.Join("tmp", "uploads")
	}
	if cfg.Storage.S3.Bucket != "" && cfg.Storage.S3.Region == "" {
		cfg.Storage.S3.Region = defaultS3Region
	}

	if cfg.Mail.From != "" && cfg.Mail.Region == "" {
		cfg.Mail.Region = defaultS3Region
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if (cfg.Mail.AccessKeyID == "") != (cfg.Mail.SecretAccessKey == "") {
		return ErrInvalidMailConfigs
	}

	return nil
}
