// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

var (
	// ErrAdminRequired is written when an anonymous request reads a private
	// collection.
	ErrAdminRequired = errors.New("admin authorization required")

	// ErrInvalidJSON is written when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrIntegrityCheckFailed is written when the HashSHA256 header does not
	// match the body of a checkout callback.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrCallbacksDisabled is written for checkout callbacks when no hash
	// key is configured, so unsigned callbacks are never trusted.
	ErrCallbacksDisabled = errors.New("donation callbacks are disabled: no hash key configured")
)
