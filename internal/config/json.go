// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and [Duration] fields that accept "1h"-style strings.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		StrictSessions bool     `json:"strict_sessions"`
		BcryptCost     int      `json:"bcrypt_cost"`
		BaseURL        string   `json:"base_url"`
		LogLevel       string   `json:"log_level"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			PublicDir string `json:"public_dir"`
			TempDir   string `json:"temp_dir"`
		} `json:"files,omitempty"`

		S3 struct {
			Bucket        string `json:"bucket"`
			Region        string `json:"region"`
			PublicBaseURL string `json:"public_base_url"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Mail struct {
		From            string `json:"from"`
		Region          string `json:"region"`
		AccessKeyID     string `json:"access_key_id"`
		SecretAccessKey string `json:"secret_access_key"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			StrictSessions: jsonCfg.App.StrictSessions,
			BcryptCost:     jsonCfg.App.BcryptCost,
			BaseURL:        jsonCfg.App.BaseURL,
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				PublicDir: jsonCfg.Storage.Files.PublicDir,
				TempDir:   jsonCfg.Storage.Files.TempDir,
			},
			S3: S3{
				Bucket:        jsonCfg.Storage.S3.Bucket,
				Region:        jsonCfg.Storage.S3.Region,
				PublicBaseURL: jsonCfg.Storage.S3.PublicBaseURL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Mail: Mail{
			From:            jsonCfg.Mail.From,
			Region:          jsonCfg.Mail.Region,
			AccessKeyID:     jsonCfg.Mail.AccessKeyID,
			SecretAccessKey: jsonCfg.Mail.SecretAccessKey,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
