// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing wording shared by the terminal views.
//
// Services return wrapped sentinel errors. [UserMessage] turns any of them
// into one short line for the status bar, so the views never show raw
// transport or storage errors to a visitor.
package app

import (
	"context"
	"errors"
	"net"
	"net/url"
	"sort"
	"strings"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/internal/validators"
)

const (
	MsgInvalidDataProvided   = "please check the highlighted fields"
	MsgMissingFields         = "please fill in every required field"
	MsgInvalidLoginPassword  = "invalid login or password"
	MsgSessionExpired        = "your session has expired, please log in again"
	MsgNotLoggedIn           = "please log in as an admin first"
	MsgAdminDisabled         = "admin access is disabled on this server"
	MsgNotFound              = "this item no longer exists"
	MsgAlreadyExists         = "this item already exists"
	MsgServerUnreachable     = "cannot reach the parish server"
	MsgTimeout               = "the parish server took too long to answer"
	MsgInternalServerError   = "something went wrong on the server"
	MsgMediaNotConfigured    = "media uploads are not available"
	MsgMediaStorageFailed    = "media storage is not responding"
	MsgDonationNotConfirmed  = "the donation was not completed"
	MsgNoIdentity            = "your visitor profile could not be saved on this device"
	MsgSyncFailed            = "could not refresh, showing the last loaded data"
	MsgUnexpectedClientError = "unexpected error"
)

// UserMessage returns a short message describing err for the status line.
// Validation failures list the offending fields.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if fields := fieldErrors(err); len(fields) > 0 {
		return MsgInvalidDataProvided + ": " + formatFields(fields)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout
	case errors.Is(err, service.ErrNotLoggedIn):
		return MsgNotLoggedIn
	case errors.Is(err, service.ErrWrongPassword):
		return MsgInvalidLoginPassword
	case errors.Is(err, service.ErrAdminDisabled):
		return MsgAdminDisabled
	case errors.Is(err, service.ErrInvalidDataProvided):
		return MsgMissingFields
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return MsgSessionExpired
	case errors.Is(err, service.ErrDonationNotConfirmed):
		return MsgDonationNotConfirmed
	case errors.Is(err, service.ErrNoIdentity):
		return MsgNoIdentity
	case errors.Is(err, service.ErrSyncFailed):
		return MsgSyncFailed
	case errors.Is(err, validators.ErrValidation), errors.Is(err, adapter.ErrBadRequest):
		return MsgInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		return MsgNotLoggedIn
	case errors.Is(err, adapter.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, adapter.ErrConflict):
		return MsgAlreadyExists
	case errors.Is(err, adapter.ErrNotImplemented):
		return notImplementedMessage(err)
	case errors.Is(err, adapter.ErrBadGateway):
		return MsgMediaStorageFailed
	case errors.Is(err, adapter.ErrInternalServerError):
		return MsgInternalServerError
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		if netErr != nil && netErr.Timeout() {
			return MsgTimeout
		}
		return MsgServerUnreachable
	}

	return MsgUnexpectedClientError
}

// notImplementedMessage tells apart the two features a server may have
// switched off.
func notImplementedMessage(err error) string {
	if strings.Contains(err.Error(), service.ErrAdminDisabled.Error()) {
		return MsgAdminDisabled
	}
	return MsgMediaNotConfigured
}

func fieldErrors(err error) map[string]string {
	if fields := adapter.FieldErrors(err); len(fields) > 0 {
		return fields
	}
	var fe validators.FieldErrors
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}

func formatFields(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+fields[name])
	}
	return strings.Join(parts, ", ")
}
