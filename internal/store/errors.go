// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a get, update or delete targets a
	// record, visitor or reminder that does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordAlreadyExists is returned when an insert collides with an
	// existing primary key.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrCacheMiss is returned by [IdentityCache.Get] for an absent key.
	ErrCacheMiss = errors.New("cache miss")

	// ErrUnsupportedDSN is returned when a DSN names no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("error beginning transaction")

	// ErrCommittingTransaction is returned when a transaction cannot commit.
	ErrCommittingTransaction = errors.New("error committing transaction")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when a record cannot be (de)serialized
	// to or from its stored JSON payload.
	ErrEncodingPayload = errors.New("failed to encode record payload")
)
