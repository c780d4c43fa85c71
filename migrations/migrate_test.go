// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db itself; every call fails unexpectedly

	err = Migrate(db, Postgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, SQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownSchema(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.ErrorContains(t, Migrate(db, "mysql"), "unknown schema")
}

// TestMigrate_SQLiteSchemas runs the real sqlite migrations twice to check
// they apply cleanly and are idempotent.
func TestMigrate_SQLiteSchemas(t *testing.T) {
	for _, schema := range []Schema{SQLite, IdentityCache} {
		t.Run(string(schema), func(t *testing.T) {
			db, err := sql.Open("sqlite3", ":memory:")
			require.NoError(t, err)
			defer db.Close()
			db.SetMaxOpenConns(1)

			require.NoError(t, Migrate(db, schema))
			require.NoError(t, Migrate(db, schema))
		})
	}
}

// TestEmbeddedSets verifies every schema directory carries migrations with
// goose annotations.
func TestEmbeddedSets(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite", "cache"} {
		files, err := fs.Glob(embedMigrations, dir+"/*.sql")
		require.NoError(t, err)
		require.NotEmpty(t, files, dir)

		for _, f := range files {
			body, err := fs.ReadFile(embedMigrations, f)
			require.NoError(t, err)
			assert.Contains(t, string(body), "-- +goose Up", f)
			assert.Contains(t, string(body), "-- +goose Down", f)
		}
	}
}
