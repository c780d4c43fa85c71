// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/crypto"
	"github.com/MKhiriev/go-parish/internal/handler"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/server"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/internal/store"
	"github.com/MKhiriev/go-parish/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errEmptyPassword = errors.New("password is empty")

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(os.Args[2:], os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	printBuildInfo()

	log := logger.NewLogger("go-parish-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if log, err = log.WithLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}
	if cfg.App.HashKey == "" {
		log.Warn().Msg("APP_HASH_KEY is not set: POST /api/donations/confirm answers 501 until it is")
	}

	ctx := context.Background()
	repos, err := store.NewRepositories(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Err(err).Msg("error closing repositories")
		}
	}()

	info := models.AppInfo{Version: buildVersion, BuildDate: buildDate, BuildCommit: buildCommit}
	if cfg.App.Version != "" {
		info.Version = cfg.App.Version
	}

	services, err := service.NewServices(ctx, repos, *cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// hashPassword prints the argon2id hash for APP_ADMIN_PASSWORD_HASH. The
// password is taken from args or, when absent, from the first line of in.
func hashPassword(args []string, in io.Reader, out io.Writer) error {
	var password string
	if len(args) > 0 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errEmptyPassword
	}

	hash, err := crypto.NewPasswordHasher().Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
