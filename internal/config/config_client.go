// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the Remote Store base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientApp holds application settings the client shares with the server.
type ClientApp struct {
	// HashKey signs donation confirmations sent to the Remote Store.
	HashKey string
	// LogLevel of the client log file.
	LogLevel string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Cache is the local identity cache.
	Cache Cache
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SyncInterval   time.Duration
	FetchTimeout   time.Duration
	ReconnectDelay time.Duration
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Cache: cfg.Storage.Cache,
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			FetchTimeout:   cfg.Workers.FetchTimeout,
			ReconnectDelay: cfg.Workers.ReconnectDelay,
		},
	}
}
