// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultSyncInterval   = 30 * time.Second
	DefaultFetchTimeout   = 10 * time.Second
	DefaultReconnectDelay = 5 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-parish",
			TokenDuration: 12 * time.Hour,
			Version:       "dev",
			LogLevel:      "info",
		},
		Storage: Storage{
			Media: Media{
				Region:        "us-east-1",
				PresignExpiry: 15 * time.Minute,
			},
			Cache: Cache{DSN: "parish-cache.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SyncInterval:   DefaultSyncInterval,
			FetchTimeout:   DefaultFetchTimeout,
			ReconnectDelay: DefaultReconnectDelay,
		},
	}
}
