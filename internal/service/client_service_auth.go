// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	session *Session
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, session *Session, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		session: session,
		logger:  logger,
	}
}

// Login exchanges the credentials for a bearer token and opens the session.
// The token expiry is read from its claims; a token whose claims cannot be
// decoded is kept without expiry.
func (c *clientAuthService) Login(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		return ErrInvalidDataProvided
	}

	token, err := c.adapter.Login(ctx, models.LoginRequest{Login: login, Password: password})
	if errors.Is(err, adapter.ErrUnauthorized) {
		return ErrWrongPassword
	}
	if errors.Is(err, adapter.ErrNotImplemented) {
		return ErrAdminDisabled
	}
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	var expiresAt time.Time
	claims, err := utils.ParseUnverifiedToken(token.String())
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "clientAuthService.Login").Msg("token claims are unreadable, session has no expiry")
	} else if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	c.session.start(login, expiresAt)
	c.logger.Info().Str("admin", login).Time("expires_at", expiresAt).Msg("admin logged in")
	return nil
}

func (c *clientAuthService) Logout() {
	c.adapter.SetToken("")
	c.session.end()
	c.logger.Info().Msg("admin logged out")
}

func (c *clientAuthService) Session() *Session {
	return c.session
}
