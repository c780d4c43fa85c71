// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.AdminLogin != "" {
		if cfg.App.AdminPasswordHash == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
			return ErrInvalidAppConfigs
		}
	}

	if cfg.Storage.Media.Bucket != "" && cfg.Storage.Media.PresignExpiry <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Cache.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.FetchTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
