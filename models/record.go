// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record is the sum type of all content entities. The set of implementations
// is closed: only the types in this file satisfy it.
type Record interface {
	// RecordID returns the server-assigned identifier.
	RecordID() string
	// Collection names the collection the record belongs to.
	Collection() Collection

	base() *Base
}

// Base carries the identity and bookkeeping fields every record has.
// All of them are assigned by the server; values sent by clients are ignored.
type Base struct {
	ID        string     `json:"id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (b *Base) RecordID() string { return b.ID }

func (b *Base) base() *Base { return b }

// RecordBase exposes the bookkeeping fields of r for the storage layer.
func RecordBase(r Record) *Base {
	return r.base()
}

// Event is a scheduled church event (service, retreat, youth meeting, ...).
type Event struct {
	Base
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description,omitempty" validate:"max=5000"`
	Location    string     `json:"location,omitempty" validate:"max=300"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	ImageURL    string     `json:"image_url,omitempty" validate:"omitempty,url"`
}

func (e *Event) Collection() Collection { return Events }

// MediaKind tells the player which embed to use for a sermon.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// Sermon is a recorded sermon with a video or audio media URL.
// Views is maintained by the server and ignored on writes.
type Sermon struct {
	Base
	Title      string     `json:"title" validate:"required,max=200"`
	Preacher   string     `json:"preacher,omitempty" validate:"max=200"`
	Scripture  string     `json:"scripture,omitempty" validate:"max=200"`
	PreachedOn *time.Time `json:"preached_on,omitempty"`
	MediaURL   string     `json:"media_url" validate:"required,url"`
	MediaKind  MediaKind  `json:"media_kind" validate:"required,oneof=video audio"`
	Views      int64      `json:"views"`
}

func (s *Sermon) Collection() Collection { return Sermons }

// Pastor is a member of the pastoral team shown on the about page.
type Pastor struct {
	Base
	Name     string `json:"name" validate:"required,max=200"`
	Role     string `json:"role,omitempty" validate:"max=200"`
	Bio      string `json:"bio,omitempty" validate:"max=5000"`
	PhotoURL string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

func (p *Pastor) Collection() Collection { return Pastors }

// GalleryImage is a single picture in the photo gallery.
type GalleryImage struct {
	Base
	Title    string `json:"title,omitempty" validate:"max=200"`
	ImageURL string `json:"image_url" validate:"required,url"`
	Caption  string `json:"caption,omitempty" validate:"max=1000"`
}

func (g *GalleryImage) Collection() Collection { return Gallery }

// Subscriber is a newsletter subscription.
type Subscriber struct {
	Base
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"max=200"`
}

func (s *Subscriber) Collection() Collection { return Subscribers }

// DonationConfirmed is the only status a stored donation can have: the
// server records donations after the checkout reported success.
const DonationConfirmed = "confirmed"

// Donation is a confirmed gift. Amount is in minor currency units.
type Donation struct {
	Base
	Amount    int64  `json:"amount" validate:"gt=0"`
	Currency  string `json:"currency" validate:"required,len=3,alpha,uppercase"`
	Purpose   string `json:"purpose" validate:"required,max=200"`
	DonorName string `json:"donor_name,omitempty" validate:"max=200"`
	Reference string `json:"reference,omitempty" validate:"max=200"`
	Status    string `json:"status,omitempty"`
}

func (d *Donation) Collection() Collection { return Donations }

// NotificationLevel grades how prominently a notification is shown.
type NotificationLevel string

const (
	LevelInfo    NotificationLevel = "info"
	LevelWarning NotificationLevel = "warning"
	LevelUrgent  NotificationLevel = "urgent"
)

// Notification is an announcement banner published by the admins.
type Notification struct {
	Base
	Title     string            `json:"title" validate:"required,max=200"`
	Message   string            `json:"message" validate:"required,max=2000"`
	Level     NotificationLevel `json:"level,omitempty" validate:"omitempty,oneof=info warning urgent"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
}

func (n *Notification) Collection() Collection { return Notifications }
