// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUnknownCollection   = errors.New("unknown collection")

	ErrWrongPassword           = errors.New("wrong login or password")
	ErrAdminDisabled           = errors.New("admin login is disabled")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrVisitorNotRegistered = errors.New("visitor is not registered")
	ErrNotASermon           = errors.New("sermon was not found")

	ErrMediaNotConfigured = errors.New("media uploads are not configured")
	ErrPresignFailed      = errors.New("presigning upload url failed")

	// ErrDonationNotConfirmed is returned when the checkout did not report
	// success. It is shared by the confirm webhook and the client flow.
	ErrDonationNotConfirmed = errors.New("donation was not confirmed")
)

// Client-side errors.
var (
	// ErrNoIdentity is returned when the visitor identity cannot be read or
	// persisted locally.
	ErrNoIdentity = errors.New("visitor identity is unavailable")

	// ErrNotLoggedIn is returned by admin operations without a session.
	ErrNotLoggedIn = errors.New("admin is not logged in")

	// ErrProfileNotSynced is returned when a profile change was saved
	// locally but the server rejected or missed it. The push is retried on
	// the next Visitor call.
	ErrProfileNotSynced = errors.New("profile saved locally only")
)

// Synchronization errors.
var (
	// ErrSyncInactive is returned by Refresh when no view holds the hook.
	ErrSyncInactive = errors.New("sync is not active")

	// ErrSyncFailed is matched by every *SyncError.
	ErrSyncFailed = errors.New("sync failed")
)
