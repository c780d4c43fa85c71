// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/migrations"
)

// ClientStorages groups the client-side storage.
type ClientStorages struct {
	// IdentityCache is the SQLite-backed key-value cache holding the visitor
	// identity and the view-tracking markers.
	IdentityCache IdentityCache

	db *DB
}

// NewClientStorages opens the SQLite cache file named by cfg.Cache.DSN,
// creating it if needed, and applies the cache migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.Cache.DSN, migrations.IdentityCache, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		IdentityCache: NewIdentityCache(db, logger),
		db:            db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
