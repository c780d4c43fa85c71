// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten and gaps are filled by later ones.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// ── sources ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that nested env prefixes are honoured.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/db")
	t.Setenv("WORKERS_SYNC_INTERVAL", "45s")
	t.Setenv("STORAGE_MEDIA_BUCKET", "gallery")

	b := newConfigBuilder(nil).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "postgres://u:p@localhost/db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, b.configs[0].Workers.SyncInterval)
	assert.Equal(t, "gallery", b.configs[0].Storage.Media.Bucket)
}

// TestWithEnv_InjectedEnvironment verifies that an explicit environment
// replaces the process one.
func TestWithEnv_InjectedEnvironment(t *testing.T) {
	t.Setenv("APP_VERSION", "process-version")

	b := newConfigBuilder(nil)
	b.environ = map[string]string{
		"APP_VERSION":         "injected",
		"SERVER_GRPC_ADDRESS": "127.0.0.1:3200",
	}
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "injected", b.configs[0].App.Version)
	assert.Equal(t, "127.0.0.1:3200", b.configs[0].Server.GRPCAddress)
}

// TestWithEnv_InvalidDuration verifies that a malformed duration is reported.
func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "soon")

	b := newConfigBuilder(nil).withEnv()
	assert.Error(t, b.err)
}

// TestWithFlags_ParsesArgs verifies flag parsing from an explicit arg list.
func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newConfigBuilder([]string{
		"-a", "127.0.0.1:9000",
		"-d", "parish.db",
		"-server-url", "parish.example.org",
		"-sync-interval", "1m",
		"-request-timeout", "5s",
		"-admin-login", "pastor",
	}).withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	got := b.configs[0]
	assert.Equal(t, "127.0.0.1:9000", got.Server.HTTPAddress)
	assert.Equal(t, "parish.db", got.Storage.DB.DSN)
	assert.Equal(t, "parish.example.org", got.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, got.Workers.SyncInterval)
	assert.Equal(t, 5*time.Second, got.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, got.Adapter.RequestTimeout)
	assert.Equal(t, "pastor", got.App.AdminLogin)
}

// TestWithFlags_UnknownFlag verifies that unknown flags become builder errors.
func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder([]string{"-nope"}).withFlags()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithFile_NoOpWithoutPath verifies that no file is read when no source
// names one.
func TestWithFile_NoOpWithoutPath(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_MissingFile verifies that an unreadable file sets b.err.
func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "does-not-exist.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// ── file formats ──────────────────────────────────────────────────────────────

// TestParseFile_JSON verifies JSON decoding including string durations.
func TestParseFile_JSON(t *testing.T) {
	p := writeTempFile(t, "config.json", `{
		"app": {"token_sign_key": "jwt", "token_duration": "2h", "admin_login": "pastor"},
		"storage": {"db": {"dsn": "parish.db"}, "media": {"bucket": "gallery", "presign_expiry": "10m"}},
		"server": {"http_address": "localhost:8081", "request_timeout": "20s"},
		"workers": {"sync_interval": "1m", "fetch_timeout": 3000000000}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, "jwt", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "pastor", cfg.App.AdminLogin)
	assert.Equal(t, "parish.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "gallery", cfg.Storage.Media.Bucket)
	assert.Equal(t, 10*time.Minute, cfg.Storage.Media.PresignExpiry)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 3*time.Second, cfg.Workers.FetchTimeout)
}

// TestParseFile_TOML verifies that a .toml path is decoded as TOML.
func TestParseFile_TOML(t *testing.T) {
	p := writeTempFile(t, "config.toml", `
[app]
version = "1.4.0"
hash_key = "secret"

[adapter]
http_address = "https://parish.example.org"
request_timeout = "7s"

[workers]
sync_interval = "15s"
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "secret", cfg.App.HashKey)
	assert.Equal(t, "https://parish.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Workers.SyncInterval)
}

// TestParseFile_InvalidBodies verifies decode errors for both formats.
func TestParseFile_InvalidBodies(t *testing.T) {
	_, err := parseFile(writeTempFile(t, "bad.json", `{ not json }`))
	assert.ErrorContains(t, err, "json")

	_, err = parseFile(writeTempFile(t, "bad.toml", `[app`))
	assert.ErrorContains(t, err, "toml")

	_, err = parseFile(writeTempFile(t, "bad-duration.json", `{"workers": {"sync_interval": "soon"}}`))
	assert.Error(t, err)
}

// ── full load ─────────────────────────────────────────────────────────────────

// TestLoadStructuredConfig_Priority verifies env > flags > file > defaults.
func TestLoadStructuredConfig_Priority(t *testing.T) {
	p := writeTempFile(t, "config.json", `{
		"app": {"version": "file-version", "token_issuer": "file-issuer"},
		"workers": {"sync_interval": "2m"}
	}`)
	t.Setenv("APP_VERSION", "env-version")

	cfg, err := loadStructuredConfig([]string{"-c", p, "-token-issuer", "flag-issuer"})
	require.NoError(t, err)

	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultFetchTimeout, cfg.Workers.FetchTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// TestLoadStructuredConfig_DefaultsAreValid verifies that an empty
// environment yields a runnable server and client config.
func TestLoadStructuredConfig_DefaultsAreValid(t *testing.T) {
	cfg, err := loadStructuredConfig(nil)
	require.NoError(t, err)
	assert.NoError(t, cfg.validate())
	assert.NoError(t, newClientConfig(cfg).validate())
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig { return defaults() }

	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{"defaults", func(*StructuredConfig) {}, nil},
		{"no address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"admin without hash", func(c *StructuredConfig) {
			c.App.AdminLogin = "pastor"
			c.App.TokenSignKey = "k"
		}, ErrInvalidAppConfigs},
		{"admin without sign key", func(c *StructuredConfig) {
			c.App.AdminLogin = "pastor"
			c.App.AdminPasswordHash = "$argon2id$..."
		}, ErrInvalidAppConfigs},
		{"admin complete", func(c *StructuredConfig) {
			c.App.AdminLogin = "pastor"
			c.App.AdminPasswordHash = "$argon2id$..."
			c.App.TokenSignKey = "k"
		}, nil},
		{"bucket without expiry", func(c *StructuredConfig) {
			c.Storage.Media.Bucket = "gallery"
			c.Storage.Media.PresignExpiry = 0
		}, ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		want   error
	}{
		{"no cache", func(c *ClientConfig) { c.Storage.Cache.DSN = "" }, ErrInvalidStorageConfigs},
		{"no server url", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"no timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero interval", func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, ErrInvalidWorkerConfigs},
		{"zero fetch timeout", func(c *ClientConfig) { c.Workers.FetchTimeout = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newClientConfig(defaults())
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"localhost:8080", false},
		{"127.0.0.1:9090", false},
		{"example.org:80", true},
		{"localhost", true},
		{"localhost:0", true},
		{"localhost:70000", true},
		{"localhost:http", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
}
