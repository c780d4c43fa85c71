// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-parish/models"
)

// ContentService is the Remote Store's CRUD over the entity collections.
type ContentService interface {
	// List returns every record of c in creation order. Sermons carry their
	// current view counts.
	List(ctx context.Context, c models.Collection) ([]models.Record, error)
	Get(ctx context.Context, c models.Collection, id string) (models.Record, error)

	// Create assigns the ID and timestamps and stores rec. Client supplied
	// bookkeeping fields are ignored.
	Create(ctx context.Context, rec models.Record) (models.Record, error)

	// CreateWithID stores rec under the ID it already carries. A second
	// insert with the same ID fails with store.ErrRecordAlreadyExists.
	CreateWithID(ctx context.Context, rec models.Record) (models.Record, error)

	// Update replaces the record identified by rec.RecordID() and returns
	// the stored version.
	Update(ctx context.Context, rec models.Record) (models.Record, error)

	Delete(ctx context.Context, c models.Collection, id string) error
}

// ContentServiceWrapper decorates a ContentService, e.g. with validation or
// change notifications.
type ContentServiceWrapper interface {
	Wrap(ContentService) ContentService
}

// VisitorService manages anonymous visitor profiles and their reminders.
type VisitorService interface {
	// Register stores v if its ID is unknown and returns the stored profile.
	Register(ctx context.Context, v models.Visitor) (models.Visitor, error)
	Get(ctx context.Context, id string) (models.Visitor, error)
	// UpdateProfile replaces the name and email of a registered visitor.
	UpdateProfile(ctx context.Context, v models.Visitor) (models.Visitor, error)

	SetReminder(ctx context.Context, visitorID, eventID string) (models.Reminder, error)
	ClearReminder(ctx context.Context, visitorID, eventID string) error
	ListReminders(ctx context.Context, visitorID string) ([]models.Reminder, error)
}

// ViewService counts sermon playbacks, once per visitor.
type ViewService interface {
	TrackView(ctx context.Context, sermonID, visitorID string) (models.ViewResult, error)
}

// DonationService records donations confirmed by the checkout provider.
type DonationService interface {
	// Confirm stores a donation for a successful callback. Any other status
	// yields ErrDonationNotConfirmed and nothing is stored.
	Confirm(ctx context.Context, cb models.DonationCallback) (*models.Donation, error)
}

// AuthService authenticates the admin and issues tokens.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MediaService hands out presigned upload targets for gallery images.
type MediaService interface {
	UploadURL(ctx context.Context, req models.UploadURLRequest) (models.UploadURL, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// ChangeNotifier fans change hints out to change feed subscribers.
type ChangeNotifier interface {
	// Publish delivers ev to every subscriber without blocking. Slow
	// subscribers lose hints.
	Publish(ev models.ChangeEvent)

	// Subscribe registers a subscriber. The returned func unsubscribes and
	// closes the channel.
	Subscribe() (<-chan models.ChangeEvent, func())
}
