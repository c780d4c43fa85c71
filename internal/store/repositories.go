// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
)

// Repositories groups the server-side repositories handed to the service
// layer.
type Repositories struct {
	ContentRepository ContentRepository
	VisitorRepository VisitorRepository
	ViewRepository    ViewRepository

	closer io.Closer
}

// NewRepositories wires the repositories for cfg.DSN: SQL-backed when a DSN
// is configured, in-memory otherwise.
func NewRepositories(ctx context.Context, cfg config.DB, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnect(ctx, cfg, log)
	if errors.Is(err, ErrUnsupportedDSN) {
		log.Warn().Str("func", "NewRepositories").Msg("no database configured, keeping content in memory")
		return NewMemoryRepositories(NewMemoryStore()), nil
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("func", "NewRepositories").Str("dialect", string(db.Dialect())).Msg("repositories created")

	return &Repositories{
		ContentRepository: NewContentRepository(db, log),
		VisitorRepository: NewVisitorRepository(db, log),
		ViewRepository:    NewViewRepository(db, log),
		closer:            db,
	}, nil
}

// NewMemoryRepositories exposes one [MemoryStore] through every repository
// interface.
func NewMemoryRepositories(m *MemoryStore) *Repositories {
	return &Repositories{
		ContentRepository: m,
		VisitorRepository: m,
		ViewRepository:    m,
	}
}

// Close releases the underlying database, if any.
func (r *Repositories) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
