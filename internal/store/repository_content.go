// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/models"
)

// contentRepository stores records as JSON payloads in the generic
// "records" table, keyed by (collection, id).
type contentRepository struct {
	*DB
	logger *logger.Logger
}

func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	return &contentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *contentRepository) List(ctx context.Context, c models.Collection) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.listRecordsQuery(c))
	if err != nil {
		log.Err(err).Str("func", "contentRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.queryRetrying(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.List").
			Str("collection", string(c)).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 32)
	for rows.Next() {
		rec, scanErr := scanRecord(c, rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "contentRepository.List").
				Str("collection", string(c)).
				Msg("failed to scan record row")
			return nil, scanErr
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "contentRepository.List").
			Str("collection", string(c)).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (r *contentRepository) Get(ctx context.Context, c models.Collection, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.getRecordQuery(c, id))
	if err != nil {
		log.Err(err).Str("func", "contentRepository.Get").Msg("failed to create query")
		return nil, err
	}

	rec, err := scanRecord(c, r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.Get").
			Str("collection", string(c)).
			Str("id", id).
			Msg("failed to get record")
		return nil, err
	}

	return rec, nil
}

func (r *contentRepository) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)
	base := models.RecordBase(rec)
	createdAt, updatedAt := timeOrNow(base.CreatedAt), timeOrNow(base.UpdatedAt)
	base.CreatedAt, base.UpdatedAt = &createdAt, &updatedAt

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	query, args, err := toSQL(r.insertRecordQuery(rec.Collection(), base.ID, payload, createdAt, updatedAt))
	if err != nil {
		log.Err(err).Str("func", "contentRepository.Create").Msg("failed to create query")
		return nil, err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			return nil, ErrRecordAlreadyExists
		}
		log.Err(err).
			Str("func", "contentRepository.Create").
			Str("collection", string(rec.Collection())).
			Str("id", base.ID).
			Msg("failed to insert record")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rec, nil
}

func (r *contentRepository) Update(ctx context.Context, rec models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)
	base := models.RecordBase(rec)

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	query, args, err := toSQL(r.updateRecordQuery(rec.Collection(), base.ID, payload, timeOrNow(base.UpdatedAt)))
	if err != nil {
		log.Err(err).Str("func", "contentRepository.Update").Msg("failed to create query")
		return nil, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.Update").
			Str("collection", string(rec.Collection())).
			Str("id", base.ID).
			Msg("failed to update record")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrRecordNotFound
	}

	return r.Get(ctx, rec.Collection(), base.ID)
}

// Delete removes the record together with its views or reminders in one
// transaction.
func (r *contentRepository) Delete(ctx context.Context, c models.Collection, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.deleteRecordQuery(c, id))
	if err != nil {
		log.Err(err).Str("func", "contentRepository.Delete").Msg("failed to create query")
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "contentRepository.Delete").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.Delete").
			Str("collection", string(c)).
			Str("id", id).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}

	if dependents, ok := r.deleteDependentsQuery(c, id); ok {
		if query, args, err = toSQL(dependents); err != nil {
			log.Err(err).Str("func", "contentRepository.Delete").Msg("failed to create query")
			return err
		}
		res, err = tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "contentRepository.Delete").
				Str("collection", string(c)).
				Str("id", id).
				Msg("failed to delete dependent rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if removed, _ := res.RowsAffected(); removed > 0 {
			log.Debug().Str("collection", string(c)).Str("id", id).Int64("removed", removed).Msg("dependent rows deleted")
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "contentRepository.Delete").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord decodes a records row; column values win over whatever the
// payload says about identity and timestamps.
func scanRecord(c models.Collection, row rowScanner) (models.Record, error) {
	var (
		id                   string
		payload              []byte
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &payload, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rec, err := models.DecodeRecord(c, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	base := models.RecordBase(rec)
	base.ID = id
	base.CreatedAt = &createdAt
	base.UpdatedAt = &updatedAt

	return rec, nil
}

func timeOrNow(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return time.Now().UTC()
	}
	return *t
}
