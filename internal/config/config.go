// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// every sub-configuration and is populated by merging environment variables,
// command-line flags, an optional config file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, admin and integrity settings.
	App App `envPrefix:"APP_"`

	// Storage holds the server database, the media bucket and the client
	// identity cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and the inbound request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the Remote Store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the polling and reconnect periods of client jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or TOML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey signs and verifies admin JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an admin token (e.g. "12h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key the checkout provider signs donation callbacks
	// with (HashSHA256 header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// AdminLogin is the single admin account name. Empty disables admin
	// login and therefore every mutating route.
	// Env: APP_ADMIN_LOGIN
	AdminLogin string `env:"ADMIN_LOGIN"`

	// AdminPasswordHash is the argon2id encoded hash of the admin password,
	// as printed by `server hash-password`.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Version is reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Media Media `envPrefix:"MEDIA_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN selects the backend: empty keeps everything in memory, a
	// postgres:// or postgresql:// URI uses PostgreSQL, anything else is
	// treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Media holds the S3-compatible bucket used for gallery uploads.
// Uploads are disabled when Bucket is empty.
type Media struct {
	Endpoint      string        `env:"ENDPOINT"`
	Region        string        `env:"REGION"`
	Bucket        string        `env:"BUCKET"`
	AccessKey     string        `env:"ACCESS_KEY"`
	SecretKey     string        `env:"SECRET_KEY"`
	PublicBaseURL string        `env:"PUBLIC_BASE_URL"`
	PresignExpiry time.Duration `env:"PRESIGN_EXPIRY"`
}

// Cache holds the client's local identity cache location.
type Cache struct {
	// DSN is the SQLite file path of the cache.
	// Env: STORAGE_CACHE_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the REST server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health listener. Empty
	// disables the listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's connection to the Remote Store.
type Adapter struct {
	// HTTPAddress is the Remote Store base URL. A missing scheme means http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background jobs.
type Workers struct {
	// SyncInterval is the fixed polling period of the sync hook.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// FetchTimeout bounds each collection fetch inside a sync cycle.
	// Env: WORKERS_FETCH_TIMEOUT
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT"`

	// ReconnectDelay is the pause between change feed reconnects.
	// Env: WORKERS_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
