// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

func cmdRefresh(ctx context.Context, sync service.ClientSyncService) tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: sync.Refresh(ctx)}
	}
}

func cmdLoadVisitor(ctx context.Context, identity service.ClientIdentityService) tea.Cmd {
	return func() tea.Msg {
		id, err := identity.VisitorID(ctx)
		return visitorLoadedMsg{visitor: models.Visitor{ID: id}, err: err}
	}
}

func cmdLoadReminders(ctx context.Context, reminders service.ClientReminderService) tea.Cmd {
	return func() tea.Msg {
		list, err := reminders.List(ctx)
		return remindersLoadedMsg{reminders: list, err: err}
	}
}

func cmdToggleReminder(ctx context.Context, reminders service.ClientReminderService, eventID string, set bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if set {
			err = reminders.Set(ctx, eventID)
		} else {
			err = reminders.Clear(ctx, eventID)
		}
		return reminderToggledMsg{eventID: eventID, set: set, err: err}
	}
}

func cmdPlay(ctx context.Context, tracker service.ClientViewTracker, visitorID, sermonID string) tea.Cmd {
	return func() tea.Msg {
		counted, err := tracker.TrackPlayback(ctx, visitorID, sermonID)
		return playbackMsg{sermonID: sermonID, counted: counted, err: err}
	}
}

func cmdLogin(ctx context.Context, auth service.ClientAuthService, login, password string) tea.Cmd {
	return func() tea.Msg {
		return loginDoneMsg{err: auth.Login(ctx, login, password)}
	}
}

// cmdSave creates or updates rec. New records converge through a refresh
// since their position in the list is decided by the server; edits are
// patched into the local copy.
func cmdSave(ctx context.Context, content service.ClientContentService, rec models.Record) tea.Cmd {
	return func() tea.Msg {
		if rec.RecordID() == "" {
			saved, err := content.Create(ctx, rec, service.ConvergeRefresh)
			return savedMsg{collection: rec.Collection(), rec: saved, created: true, err: err}
		}
		saved, err := content.Update(ctx, rec, service.ConvergePatch)
		return savedMsg{collection: rec.Collection(), rec: saved, err: err}
	}
}

func cmdDelete(ctx context.Context, content service.ClientContentService, c models.Collection, id string) tea.Cmd {
	return func() tea.Msg {
		err := content.Delete(ctx, c, id, service.ConvergePatch)
		return deletedMsg{collection: c, id: id, err: err}
	}
}

func cmdDonate(ctx context.Context, donations service.ClientDonationService, req models.CheckoutRequest) tea.Cmd {
	return func() tea.Msg {
		d, err := donations.Donate(ctx, req)
		return donationDoneMsg{donation: d, err: err}
	}
}

func cmdSubscribe(ctx context.Context, content service.ClientContentService, email, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := content.Subscribe(ctx, email, name)
		return subscribedMsg{err: err}
	}
}

func cmdSaveProfile(ctx context.Context, identity service.ClientIdentityService, name, email string) tea.Cmd {
	return func() tea.Msg {
		v, err := identity.UpdateProfile(ctx, name, email)
		if errors.Is(err, service.ErrProfileNotSynced) {
			return profileSavedMsg{visitor: v, localOnly: true}
		}
		if err != nil {
			return profileSavedMsg{err: err}
		}
		// registers the visitor when that has not happened yet
		v, err = identity.Visitor(ctx)
		return profileSavedMsg{visitor: v, err: err}
	}
}

func cmdUploadURL(ctx context.Context, content service.ClientContentService, fileName, contentType string) tea.Cmd {
	return func() tea.Msg {
		u, err := content.UploadURL(ctx, fileName, contentType)
		return uploadURLMsg{upload: u, err: err}
	}
}

func cmdServerInfo(ctx context.Context, info service.ClientAppInfoService) tea.Cmd {
	if info == nil {
		return nil
	}
	return func() tea.Msg {
		i, err := info.AppInfo(ctx)
		return serverInfoMsg{info: i, err: err}
	}
}

// parseAmount reads a decimal amount such as "25" or "12.50" into minor
// units.
func parseAmount(v string) (int64, bool) {
	v = strings.TrimSpace(v)
	whole, frac, hasFrac := strings.Cut(v, ".")
	if whole == "" {
		return 0, false
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, false
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, false
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, false
		}
	}
	return units*100 + cents, true
}
