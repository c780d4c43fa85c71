// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-parish/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContentRepository persists the records of every collection.
type ContentRepository interface {
	// List returns the records of c ordered by creation time, oldest first.
	List(ctx context.Context, c models.Collection) ([]models.Record, error)
	// Get returns a single record or ErrRecordNotFound.
	Get(ctx context.Context, c models.Collection, id string) (models.Record, error)
	// Create stores rec. ID and timestamps must already be set.
	Create(ctx context.Context, rec models.Record) (models.Record, error)
	// Update replaces the stored record with the same collection and ID.
	// CreatedAt is preserved from storage; ErrRecordNotFound if absent.
	Update(ctx context.Context, rec models.Record) (models.Record, error)
	// Delete removes the record or returns ErrRecordNotFound.
	Delete(ctx context.Context, c models.Collection, id string) error
}

// VisitorRepository persists visitor profiles and their event reminders.
type VisitorRepository interface {
	// SaveVisitor inserts v unless a visitor with the same ID exists and
	// returns the stored profile either way.
	SaveVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error)
	GetVisitor(ctx context.Context, id string) (models.Visitor, error)
	// UpdateVisitor replaces the name and email of a registered visitor or
	// returns ErrRecordNotFound.
	UpdateVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error)
	// AddReminder is idempotent and returns the stored reminder.
	AddReminder(ctx context.Context, r models.Reminder) (models.Reminder, error)
	// RemoveReminder is idempotent.
	RemoveReminder(ctx context.Context, visitorID, eventID string) error
	ListReminders(ctx context.Context, visitorID string) ([]models.Reminder, error)
}

// ViewRepository counts sermon playbacks, once per visitor.
type ViewRepository interface {
	// RecordView stores the (sermon, visitor) pair and reports whether it
	// was new.
	RecordView(ctx context.Context, sermonID, visitorID string) (bool, error)
	// CountViews returns view totals keyed by sermon ID. Sermons without
	// views are absent from the map.
	CountViews(ctx context.Context) (map[string]int64, error)
}
