// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"
)

// Session is the client's admin login state. It is created once in the
// client entry point and shared by the services that need it.
type Session struct {
	mu        sync.RWMutex
	admin     string
	expiresAt time.Time
}

func NewSession() *Session {
	return &Session{}
}

// LoggedIn reports whether an admin is logged in and the token has not
// expired. A zero expiry never expires.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin == "" {
		return false
	}
	return s.expiresAt.IsZero() || time.Now().Before(s.expiresAt)
}

// Admin returns the logged in admin login, or "".
func (s *Session) Admin() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

func (s *Session) start(admin string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = admin
	s.expiresAt = expiresAt
}

func (s *Session) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = ""
	s.expiresAt = time.Time{}
}
