// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "not logged in", err: fmt.Errorf("create: %w", service.ErrNotLoggedIn), want: MsgNotLoggedIn},
		{name: "wrong password", err: service.ErrWrongPassword, want: MsgInvalidLoginPassword},
		{name: "admin disabled", err: service.ErrAdminDisabled, want: MsgAdminDisabled},
		{name: "empty credentials", err: service.ErrInvalidDataProvided, want: MsgMissingFields},
		{name: "donation", err: service.ErrDonationNotConfirmed, want: MsgDonationNotConfirmed},
		{name: "identity", err: fmt.Errorf("%w: disk full", service.ErrNoIdentity), want: MsgNoIdentity},
		{name: "sync", err: &service.SyncError{Failures: map[models.Collection]error{models.Events: errors.New("x")}}, want: MsgSyncFailed},
		{name: "unauthorized", err: fmt.Errorf("list: %w", adapter.ErrUnauthorized), want: MsgSessionExpired},
		{name: "not found", err: adapter.ErrNotFound, want: MsgNotFound},
		{name: "conflict", err: adapter.ErrConflict, want: MsgAlreadyExists},
		{name: "media disabled", err: adapter.ErrNotImplemented, want: MsgMediaNotConfigured},
		{name: "bad gateway", err: adapter.ErrBadGateway, want: MsgMediaStorageFailed},
		{name: "server error", err: adapter.ErrInternalServerError, want: MsgInternalServerError},
		{name: "deadline", err: fmt.Errorf("list: %w", context.DeadlineExceeded), want: MsgTimeout},
		{name: "connection refused", err: &url.Error{Op: "Get", URL: "http://localhost:8080", Err: errors.New("connection refused")}, want: MsgServerUnreachable},
		{name: "unknown", err: errors.New("weird"), want: MsgUnexpectedClientError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessage_ListsFields(t *testing.T) {
	err := fmt.Errorf("donate: %w", validators.FieldErrors{
		"purpose": "is required",
		"amount":  "must be greater than 0",
	})

	assert.Equal(t, MsgInvalidDataProvided+": amount must be greater than 0, purpose is required", UserMessage(err))
}
