// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-parish/models"
)

// ClientSyncService is the data synchronization hook: a polling snapshot of
// a fixed set of Remote Store collections shared by every view that uses it.
type ClientSyncService interface {
	// Acquire activates the hook for one view. The first Acquire publishes an
	// empty loading snapshot, fetches immediately and then every sync
	// interval. The returned release func deactivates the hook once the last
	// holder has released it; it is idempotent and blocks until the polling
	// loop has exited, so no request is issued after it returns.
	Acquire(ctx context.Context) (release func())

	// Refresh runs one fetch cycle out of band. It returns the cycle's error
	// (also published in the snapshot) or ErrSyncInactive when no view holds
	// the hook.
	Refresh(ctx context.Context) error

	// Snapshot returns the latest published snapshot.
	Snapshot() models.SyncSnapshot

	// Subscribe delivers every published snapshot, dropping intermediate
	// ones for slow readers. The returned func unsubscribes and closes the
	// channel.
	Subscribe() (<-chan models.SyncSnapshot, func())
}

// Syncer runs a single synchronization cycle.
type Syncer interface {
	Refresh(ctx context.Context) error
}

// ClientSyncJob defines the contract for a background worker that runs a
// sync cycle immediately and then on a fixed period.
type ClientSyncJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// Convergence selects how a view reconciles its data after a successful
// mutation.
type Convergence int

const (
	// ConvergePatch leaves the hook alone; the caller splices the returned
	// record into its own copy with models.Upsert or models.Remove.
	ConvergePatch Convergence = iota

	// ConvergeRefresh triggers an immediate hook refresh.
	ConvergeRefresh
)

// ClientContentService performs admin mutations against the Remote Store.
// On failure nothing local is touched and the error is returned for display.
type ClientContentService interface {
	Create(ctx context.Context, rec models.Record, mode Convergence) (models.Record, error)
	Update(ctx context.Context, rec models.Record, mode Convergence) (models.Record, error)

	// Delete removes a record. Deleting a record that is already gone
	// succeeds.
	Delete(ctx context.Context, c models.Collection, id string, mode Convergence) error

	// Subscribe signs an address up for the newsletter.
	Subscribe(ctx context.Context, email, name string) (*models.Subscriber, error)

	// UploadURL asks for a presigned gallery upload target.
	UploadURL(ctx context.Context, fileName, contentType string) (models.UploadURL, error)
}

// ClientIdentityService provisions the anonymous visitor identity.
type ClientIdentityService interface {
	// VisitorID returns the persisted visitor ID, generating and persisting
	// one on first use. It never calls the Remote Store.
	VisitorID(ctx context.Context) (string, error)

	// Visitor returns the visitor identity and registers it with the Remote
	// Store if that has not succeeded yet. Registration failures are logged
	// and retried on the next call; the ID is never rolled back.
	Visitor(ctx context.Context) (models.Visitor, error)

	// UpdateProfile stores an optional name and email locally. They travel
	// with the registration when it has not succeeded yet; the Remote Store
	// keeps the profile it registered first.
	UpdateProfile(ctx context.Context, name, email string) (models.Visitor, error)
}

// ClientViewTracker counts sermon playbacks once per visitor.
type ClientViewTracker interface {
	// TrackPlayback reports the first playback of sermonID by visitorID.
	// Later calls for the same pair return without contacting the Remote
	// Store and report counted == false.
	TrackPlayback(ctx context.Context, visitorID, sermonID string) (counted bool, err error)
}

// ClientReminderService manages event reminders of the local visitor.
type ClientReminderService interface {
	Set(ctx context.Context, eventID string) error
	Clear(ctx context.Context, eventID string) error
	List(ctx context.Context) ([]models.Reminder, error)
}

// Checkout is the external payment widget: it charges req and reports the
// outcome. It is a black box to the rest of the client.
type Checkout interface {
	Pay(ctx context.Context, req models.CheckoutRequest) (models.CheckoutResult, error)
}

// ClientDonationService runs a donation through the checkout.
type ClientDonationService interface {
	// Donate validates req, runs the checkout and records the donation when
	// the checkout reports success. Any other outcome yields
	// ErrDonationNotConfirmed; nothing is retried.
	Donate(ctx context.Context, req models.CheckoutRequest) (*models.Donation, error)
}

// ClientAuthService handles the admin session.
type ClientAuthService interface {
	Login(ctx context.Context, login, password string) error
	Logout()
	Session() *Session
}

// ClientAppInfoService reports the build of the Remote Store the client is
// talking to. adapter.ServerAdapter satisfies it.
type ClientAppInfoService interface {
	AppInfo(ctx context.Context) (models.AppInfo, error)
}
