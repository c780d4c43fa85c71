// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks domain values at the service boundary before
// anything reaches the store.
//
// The single implementation is backed by go-playground/validator and the
// `validate` struct tags declared in package models. Failures are reported
// as [FieldErrors] keyed by JSON field name.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally restricts the
	// reported failures to the named JSON fields.
	Validate(context.Context, any, ...string) error
}
