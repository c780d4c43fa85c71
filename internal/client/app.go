// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-parish/internal/logger"
)

type App struct {
	ui      UI
	workers Background
	logger  *logger.Logger
}

func NewApp(ui UI, workers Background, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, workers: workers, logger: logger}, nil
}

// Run starts the workers, runs the UI and stops the workers once the UI has
// exited. A worker failure is logged and does not end the UI; the views keep
// polling on their own.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan error, 1)
	if a.workers != nil {
		go func() { workersDone <- a.workers.Run(ctx) }()
	} else {
		workersDone <- nil
	}

	uiErr := a.ui.Run(ctx)
	cancel()

	if err := <-workersDone; err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Err(err).Str("func", "App.Run").Msg("background workers failed")
	}

	if uiErr != nil {
		return fmt.Errorf("client ui: %w", uiErr)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
