// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Visitor is the server-side profile of an anonymous site visitor. The ID is
// generated by the client and persisted in its local identity cache.
type Visitor struct {
	ID        string     `json:"id" validate:"required,uuid"`
	Name      string     `json:"name,omitempty" validate:"max=200"`
	Email     string     `json:"email,omitempty" validate:"omitempty,email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Reminder records that a visitor wants to be reminded about an event.
type Reminder struct {
	VisitorID string     `json:"visitor_id"`
	EventID   string     `json:"event_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ViewRequest is the body of a sermon view-tracking call.
type ViewRequest struct {
	VisitorID string `json:"visitor_id" validate:"required,uuid"`
}

// ViewResult reports whether a playback was counted and the resulting total.
// Counted is false when the visitor had already been counted for the sermon.
type ViewResult struct {
	Counted bool  `json:"counted"`
	Views   int64 `json:"views"`
}
