// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-parish/models"

type hookKind int

const (
	publicHook hookKind = iota
	adminHook
)

// snapshotMsg carries a snapshot published by one of the sync hooks.
// closed is set once the subscription channel has been closed.
type snapshotMsg struct {
	hook   hookKind
	gen    int
	snap   models.SyncSnapshot
	closed bool
}

type refreshDoneMsg struct {
	err error
}

type visitorLoadedMsg struct {
	visitor models.Visitor
	err     error
}

type remindersLoadedMsg struct {
	reminders []models.Reminder
	err       error
}

type reminderToggledMsg struct {
	eventID string
	set     bool
	err     error
}

type playbackMsg struct {
	sermonID string
	counted  bool
	err      error
}

type loginDoneMsg struct {
	err error
}

type savedMsg struct {
	collection models.Collection
	rec        models.Record
	created    bool
	err        error
}

type deletedMsg struct {
	collection models.Collection
	id         string
	err        error
}

type donationDoneMsg struct {
	donation *models.Donation
	err      error
}

type subscribedMsg struct {
	err error
}

type profileSavedMsg struct {
	visitor models.Visitor
	err     error

	// localOnly is set when the server has not accepted the change yet.
	localOnly bool
}

type uploadURLMsg struct {
	upload models.UploadURL
	err    error
}

type serverInfoMsg struct {
	info models.AppInfo
	err  error
}
