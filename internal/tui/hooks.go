// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

// hookHandle is one view's hold on a sync hook plus its subscription.
type hookHandle struct {
	kind        hookKind
	gen         int
	ch          <-chan models.SyncSnapshot
	unsubscribe func()
	release     func()
}

// openHook subscribes before acquiring so the first loading snapshot is
// delivered.
func openHook(ctx context.Context, kind hookKind, gen int, sync service.ClientSyncService) *hookHandle {
	ch, unsubscribe := sync.Subscribe()
	release := sync.Acquire(ctx)
	return &hookHandle{kind: kind, gen: gen, ch: ch, unsubscribe: unsubscribe, release: release}
}

// close stops the subscription first so the reset snapshot published on
// release never reaches the view.
func (h *hookHandle) close() {
	if h == nil {
		return
	}
	h.unsubscribe()
	h.release()
}

func (h *hookHandle) next() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-h.ch
		return snapshotMsg{hook: h.kind, gen: h.gen, snap: snap, closed: !ok}
	}
}

// hooks is shared by every copy of the root model, so the handles can be
// closed once the program has exited.
type hooks struct {
	public *hookHandle
	admin  *hookHandle
	gen    int
}

func (h *hooks) openAdmin(ctx context.Context, sync service.ClientSyncService) *hookHandle {
	h.admin.close()
	h.gen++
	h.admin = openHook(ctx, adminHook, h.gen, sync)
	return h.admin
}

func (h *hooks) closeAdmin() {
	h.admin.close()
	h.admin = nil
}

func (h *hooks) closeAll() {
	h.closeAdmin()
	h.public.close()
	h.public = nil
}

func (h *hooks) current(kind hookKind) *hookHandle {
	if kind == adminHook {
		return h.admin
	}
	return h.public
}
