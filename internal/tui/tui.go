// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal presentation of the parish site: the public
// sections fed by the public sync hook, visitor actions (reminders, sermon
// playback, giving, newsletter) and the admin dashboard fed by the admin
// sync hook.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

type TUI struct {
	services *service.ClientServices
	info     models.AppInfo
	logger   *logger.Logger
}

// New builds the UI. info describes the client build and is shown on the
// about screen.
func New(services *service.ClientServices, info models.AppInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, info: info, logger: logger.WithComponent("tui")}
}

// Run shows the UI until the user quits or ctx is cancelled. Every sync hook
// the views acquired is released before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	model := newRootModel(ctx, t.services, t.info, t.logger)
	defer model.hooks.closeAll()

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
