// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the server and
// the client: typed context keys, HMAC hashing, JSON response writing, the
// resty client wrapper, JWT handling and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// AdminCtxKey stores the login of the authenticated admin.
var AdminCtxKey = contextKey("admin")

// WithAdmin returns a copy of ctx carrying the admin login.
func WithAdmin(ctx context.Context, admin string) context.Context {
	return context.WithValue(ctx, AdminCtxKey, admin)
}

// GetAdminFromContext retrieves the admin login placed by the auth
// middleware. ok is false when the request is anonymous.
func GetAdminFromContext(ctx context.Context) (string, bool) {
	admin, ok := ctx.Value(AdminCtxKey).(string)
	return admin, ok && admin != ""
}
