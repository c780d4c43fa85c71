// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config JSON or TOML config file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout for both server and client (e.g., "30s")
//	-hash-key donation callback HMAC key
//	-admin-login admin account name
//	-admin-password-hash argon2id hash of the admin password
//	-media-bucket S3 bucket for gallery uploads
//	-media-endpoint S3 endpoint override (MinIO etc.)
//	-server-url Remote Store base URL used by the client
//	-cache identity cache file used by the client
//	-sync-interval client polling period
//	-fetch-timeout per-collection fetch timeout
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("parish", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var configPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var adminLogin, adminPasswordHash string
	var mediaBucket, mediaEndpoint string
	var serverURL string
	var cacheDSN string
	var syncInterval, fetchTimeout time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or TOML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Donation callback hash key")
	fs.StringVar(&adminLogin, "admin-login", "", "Admin login")
	fs.StringVar(&adminPasswordHash, "admin-password-hash", "", "Admin password argon2id hash")
	fs.StringVar(&mediaBucket, "media-bucket", "", "S3 bucket for gallery uploads")
	fs.StringVar(&mediaEndpoint, "media-endpoint", "", "S3 endpoint override")
	fs.StringVar(&serverURL, "server-url", "", "Remote Store base URL")
	fs.StringVar(&cacheDSN, "cache", "", "Identity cache file")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync polling interval")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Per-collection fetch timeout")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
			HashKey:           hashKey,
			AdminLogin:        adminLogin,
			AdminPasswordHash: adminPasswordHash,
			LogLevel:          logLevel,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			Media: Media{
				Bucket:   mediaBucket,
				Endpoint: mediaEndpoint,
			},
			Cache: Cache{DSN: cacheDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			FetchTimeout: fetchTimeout,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
