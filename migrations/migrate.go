// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schema migrations for every database
// the project talks to.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Schema selects a migration set.
type Schema string

const (
	// Postgres is the Remote Store schema on PostgreSQL.
	Postgres Schema = "postgres"
	// SQLite is the Remote Store schema on SQLite.
	SQLite Schema = "sqlite"
	// IdentityCache is the client's local key-value cache (SQLite).
	IdentityCache Schema = "cache"
)

//go:embed postgres/*.sql sqlite/*.sql cache/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

func (s Schema) dialect() (string, error) {
	switch s {
	case Postgres:
		return "pgx", nil
	case SQLite, IdentityCache:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unknown schema %q", string(s))
	}
}

// Migrate applies every pending migration of schema to db.
func Migrate(db *sql.DB, schema Schema) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, err := schema.dialect()
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, string(schema)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
