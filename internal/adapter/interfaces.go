// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the Remote Store.
//
// [ServerAdapter] is the REST client used by the client services; its HTTP
// implementation is built on resty ([NewHTTPServerAdapter]). [ChangeListener]
// follows the Remote Store change feed over a websocket and reports every
// hint to a callback.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The
// decoded error body is available through [StatusError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-parish/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the Remote Store. Implementations
// are responsible for serialisation, the admin bearer token and mapping
// transport-level errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the admin bearer token attached to every subsequent
	// request. An empty token makes requests anonymous again.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// AppInfo fetches the Remote Store build information.
	AppInfo(ctx context.Context) (models.AppInfo, error)

	// Login exchanges admin credentials for a bearer token. On success the
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// List fetches every record of collection c in server order.
	List(ctx context.Context, c models.Collection) ([]models.Record, error)

	// Get fetches a single record.
	Get(ctx context.Context, c models.Collection, id string) (models.Record, error)

	// Create stores a new record and returns it as confirmed by the server,
	// with its assigned ID and timestamps.
	Create(ctx context.Context, rec models.Record) (models.Record, error)

	// Update replaces the record with rec.RecordID() and returns the stored
	// version.
	Update(ctx context.Context, rec models.Record) (models.Record, error)

	// Delete removes a record. A missing record yields [ErrNotFound].
	Delete(ctx context.Context, c models.Collection, id string) error

	// Subscribe signs an address up for the newsletter.
	Subscribe(ctx context.Context, sub models.Subscriber) (*models.Subscriber, error)

	// RegisterVisitor creates the server-side visitor profile. Registering an
	// already known ID returns the stored profile.
	RegisterVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error)

	// GetVisitor fetches a visitor profile.
	GetVisitor(ctx context.Context, id string) (models.Visitor, error)
	// UpdateVisitor replaces the name and email of a registered visitor.
	UpdateVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error)

	// SetReminder, ClearReminder and ListReminders manage event reminders of
	// a visitor. Setting and clearing are idempotent.
	SetReminder(ctx context.Context, visitorID, eventID string) (models.Reminder, error)
	ClearReminder(ctx context.Context, visitorID, eventID string) error
	ListReminders(ctx context.Context, visitorID string) ([]models.Reminder, error)

	// TrackView records a sermon playback by visitorID.
	TrackView(ctx context.Context, sermonID, visitorID string) (models.ViewResult, error)

	// ConfirmDonation forwards a checkout callback to the Remote Store, signed
	// with the configured hash key.
	ConfirmDonation(ctx context.Context, cb models.DonationCallback) (*models.Donation, error)

	// RequestUploadURL asks for a presigned gallery upload target.
	RequestUploadURL(ctx context.Context, req models.UploadURLRequest) (models.UploadURL, error)
}

// ChangeListener follows the Remote Store change feed.
type ChangeListener interface {
	// Listen connects to the feed and calls onChange for every event until
	// ctx is cancelled. Dropped connections are re-established after the
	// configured delay. Listen blocks and returns ctx.Err() on shutdown.
	Listen(ctx context.Context, onChange func(models.ChangeEvent)) error
}
