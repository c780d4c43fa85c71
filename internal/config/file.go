// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. The same
// layout is accepted as JSON and as TOML.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration     Duration `json:"token_duration" toml:"token_duration"`
		HashKey           string   `json:"hash_key" toml:"hash_key"`
		AdminLogin        string   `json:"admin_login" toml:"admin_login"`
		AdminPasswordHash string   `json:"admin_password_hash" toml:"admin_password_hash"`
		Version           string   `json:"version" toml:"version"`
		LogLevel          string   `json:"log_level" toml:"log_level"`
	} `json:"app,omitempty" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`

		Media struct {
			Endpoint      string   `json:"endpoint" toml:"endpoint"`
			Region        string   `json:"region" toml:"region"`
			Bucket        string   `json:"bucket" toml:"bucket"`
			AccessKey     string   `json:"access_key" toml:"access_key"`
			SecretKey     string   `json:"secret_key" toml:"secret_key"`
			PublicBaseURL string   `json:"public_base_url" toml:"public_base_url"`
			PresignExpiry Duration `json:"presign_expiry" toml:"presign_expiry"`
		} `json:"media,omitempty" toml:"media"`

		Cache struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"cache,omitempty" toml:"cache"`
	} `json:"storage,omitempty" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server,omitempty" toml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter,omitempty" toml:"adapter"`

	Workers struct {
		SyncInterval   Duration `json:"sync_interval" toml:"sync_interval"`
		FetchTimeout   Duration `json:"fetch_timeout" toml:"fetch_timeout"`
		ReconnectDelay Duration `json:"reconnect_delay" toml:"reconnect_delay"`
	} `json:"workers,omitempty" toml:"workers"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err = toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	} else {
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:      f.App.TokenSignKey,
			TokenIssuer:       f.App.TokenIssuer,
			TokenDuration:     time.Duration(f.App.TokenDuration),
			HashKey:           f.App.HashKey,
			AdminLogin:        f.App.AdminLogin,
			AdminPasswordHash: f.App.AdminPasswordHash,
			Version:           f.App.Version,
			LogLevel:          f.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
			Media: Media{
				Endpoint:      f.Storage.Media.Endpoint,
				Region:        f.Storage.Media.Region,
				Bucket:        f.Storage.Media.Bucket,
				AccessKey:     f.Storage.Media.AccessKey,
				SecretKey:     f.Storage.Media.SecretKey,
				PublicBaseURL: f.Storage.Media.PublicBaseURL,
				PresignExpiry: time.Duration(f.Storage.Media.PresignExpiry),
			},
			Cache: Cache{DSN: f.Storage.Cache.DSN},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:   time.Duration(f.Workers.SyncInterval),
			FetchTimeout:   time.Duration(f.Workers.FetchTimeout),
			ReconnectDelay: time.Duration(f.Workers.ReconnectDelay),
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and TOML. Bare JSON numbers are taken as nanoseconds.
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
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
