// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/models"
)

type visitorRepository struct {
	*DB
	logger *logger.Logger
}

func NewVisitorRepository(db *DB, logger *logger.Logger) VisitorRepository {
	return &visitorRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *visitorRepository) SaveVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.insertVisitorQuery(v, timeOrNow(v.CreatedAt)))
	if err != nil {
		log.Err(err).Str("func", "visitorRepository.SaveVisitor").Msg("failed to create query")
		return models.Visitor{}, err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "visitorRepository.SaveVisitor").
			Str("visitor_id", v.ID).
			Msg("failed to insert visitor")
		return models.Visitor{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetVisitor(ctx, v.ID)
}

func (r *visitorRepository) GetVisitor(ctx context.Context, id string) (models.Visitor, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.getVisitorQuery(id))
	if err != nil {
		log.Err(err).Str("func", "visitorRepository.GetVisitor").Msg("failed to create query")
		return models.Visitor{}, err
	}

	var (
		v         models.Visitor
		createdAt time.Time
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.Name, &v.Email, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Visitor{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "visitorRepository.GetVisitor").
			Str("visitor_id", id).
			Msg("failed to scan visitor row")
		return models.Visitor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	v.CreatedAt = &createdAt

	return v, nil
}

func (r *visitorRepository) UpdateVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.updateVisitorQuery(v))
	if err != nil {
		log.Err(err).Str("func", "visitorRepository.UpdateVisitor").Msg("failed to create query")
		return models.Visitor{}, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "visitorRepository.UpdateVisitor").
			Str("visitor_id", v.ID).
			Msg("failed to update visitor")
		return models.Visitor{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return models.Visitor{}, ErrRecordNotFound
	}

	return r.GetVisitor(ctx, v.ID)
}

func (r *visitorRepository) AddReminder(ctx context.Context, rem models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.insertReminderQuery(rem, timeOrNow(rem.CreatedAt)))
	if err != nil {
		log.Err(err).Str("func", "visitorRepository.AddReminder").Msg("failed to create query")
		return models.Reminder{}, err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "visitorRepository.AddReminder").
			Str("visitor_id", rem.VisitorID).
			Str("event_id", rem.EventID).
			Msg("failed to insert reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = toSQL(r.getReminderQuery(rem.VisitorID, rem.EventID))
	if err != nil {
		return models.Reminder{}, err
	}

	stored, err := scanReminder(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "visitorRepository.AddReminder").
			Str("visitor_id", rem.VisitorID).
			Msg("failed to read back reminder")
		return models.Reminder{}, err
	}

	return stored, nil
}

func (r *visitorRepository) RemoveReminder(ctx context.Context, visitorID, eventID string) error {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.deleteReminderQuery(visitorID, eventID))
	if err != nil {
		log.Err(err).Str("func", "visitorRepository.RemoveReminder").Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "visitorRepository.RemoveReminder").
			Str("visitor_id", visitorID).
			Str("event_id", eventID).
			Msg("failed to delete reminder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *visitorRepository) ListReminders(ctx context.Context, visitorID string) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(r.listRemindersQuery(visitorID))
	if err != nil {
		log.Err(err).Str("func", "visitorRepository.ListReminders").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.queryRetrying(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "visitorRepository.ListReminders").
			Str("visitor_id", visitorID).
			Msg("failed to execute query for listing reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reminders := make([]models.Reminder, 0, 8)
	for rows.Next() {
		rem, scanErr := scanReminder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		reminders = append(reminders, rem)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reminders, nil
}

func scanReminder(row rowScanner) (models.Reminder, error) {
	var (
		rem       models.Reminder
		createdAt time.Time
	)
	if err := row.Scan(&rem.VisitorID, &rem.EventID, &createdAt); err != nil {
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	rem.CreatedAt = &createdAt
	return rem, nil
}
