// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-parish/internal/logger"
)

type sqliteIdentityCache struct {
	*DB
	logger *logger.Logger
}

func NewIdentityCache(db *DB, logger *logger.Logger) IdentityCache {
	return &sqliteIdentityCache{
		DB:     db,
		logger: logger,
	}
}

func (c *sqliteIdentityCache) Get(ctx context.Context, key string) (string, error) {
	query, args, err := toSQL(c.getCacheQuery(key))
	if err != nil {
		return "", err
	}

	var value string
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCacheMiss
	}
	if err != nil {
		c.logger.Err(err).Str("func", "sqliteIdentityCache.Get").Str("key", key).Msg("failed to read cache entry")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (c *sqliteIdentityCache) Set(ctx context.Context, key, value string) error {
	query, args, err := toSQL(c.setCacheQuery(key, value, time.Now().UTC()))
	if err != nil {
		return err
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "sqliteIdentityCache.Set").Str("key", key).Msg("failed to write cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *sqliteIdentityCache) Remove(ctx context.Context, key string) error {
	query, args, err := toSQL(c.deleteCacheQuery(key))
	if err != nil {
		return err
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "sqliteIdentityCache.Remove").Str("key", key).Msg("failed to delete cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// MemoryIdentityCache is a process-local [IdentityCache].
type MemoryIdentityCache struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryIdentityCache() *MemoryIdentityCache {
	return &MemoryIdentityCache{values: make(map[string]string)}
}

func (m *MemoryIdentityCache) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (m *MemoryIdentityCache) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryIdentityCache) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
