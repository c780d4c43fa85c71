// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-parish/internal/logger"
)

// viewRepository relies on the (sermon_id, visitor_id) primary key: a
// repeated view is swallowed by ON CONFLICT DO NOTHING and affects no rows.
type viewRepository struct {
	*DB
	logger *logger.Logger
}

func NewViewRepository(db *DB, logger *logger.Logger) ViewRepository {
	return &viewRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *viewRepository) RecordView(ctx context.Context, sermonID, visitorID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.insertViewQuery(sermonID, visitorID, time.Now().UTC()))
	if err != nil {
		log.Err(err).Str("func", "viewRepository.RecordView").Msg("failed to create query")
		return false, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "viewRepository.RecordView").
			Str("sermon_id", sermonID).
			Str("visitor_id", visitorID).
			Msg("failed to insert view")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *viewRepository) CountViews(ctx context.Context) (map[string]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.countViewsQuery())
	if err != nil {
		log.Err(err).Str("func", "viewRepository.CountViews").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.queryRetrying(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "viewRepository.CountViews").Msg("failed to count views")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			sermonID string
			count    int64
		)
		if err = rows.Scan(&sermonID, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts[sermonID] = count
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return counts, nil
}
