// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/client"
	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/internal/store"
	"github.com/MKhiriev/go-parish/internal/tui"
	"github.com/MKhiriev/go-parish/internal/workers"
	"github.com/MKhiriev/go-parish/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-parish-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if log, err = log.WithLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	changeListener, err := adapter.NewChangeListener(cfg.Adapter.HTTPAddress, cfg.Workers.ReconnectDelay, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create change listener")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(localStorage.IdentityCache, serverAdapter, service.NewSandboxCheckout(), cfg.Workers, log)

	background := workers.NewWorkers(log,
		workers.NewIdentityWorker(services.IdentityService, log),
		workers.NewChangeFeedWorker(changeListener, log, services.PublicSync, services.AdminSync),
	)

	info := models.AppInfo{Version: buildVersion, BuildDate: buildDate, BuildCommit: buildCommit}
	ui := tui.New(services, info, log)

	app, err := client.NewApp(ui, background, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
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
