// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/migrations"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectMemory   Dialect = ""
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DetectDialect picks the backend for dsn: empty means in-memory, a
// postgres:// or postgresql:// URI means PostgreSQL and anything else is a
// SQLite file path.
func DetectDialect(dsn string) Dialect {
	switch {
	case strings.TrimSpace(dsn) == "":
		return DialectMemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres
	default:
		return DialectSQLite
	}
}

// ErrorClassificator maps driver errors onto storage semantics.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports a primary key or unique constraint clash.
	IsUniqueViolation(err error) bool
}

// DB is a *sql.DB bound to its dialect, query builder and migration set.
type DB struct {
	*sql.DB
	dialect            Dialect
	schema             migrations.Schema
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the migration set matching the connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.schema)
}

// Dialect reports the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// NewConnect opens the server database selected by cfg.DSN and applies its
// migrations. It returns ErrUnsupportedDSN for an empty DSN; callers fall
// back to the in-memory store themselves.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch DetectDialect(cfg.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DSN, migrations.SQLite, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("migration failed")
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

// readRetryDelays are the pauses between attempts of an idempotent read.
var readRetryDelays = []time.Duration{50 * time.Millisecond, 250 * time.Millisecond}

// queryRetrying runs a read-only query and repeats it while the driver
// classifies the failure as [Retryable]. Writes never go through here.
func (db *DB) queryRetrying(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	for _, delay := range readRetryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			break
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("transient database error, retrying read")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		rows, err = db.QueryContext(ctx, query, args...)
	}
	return rows, err
}
