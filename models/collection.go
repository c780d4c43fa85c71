// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain types shared by the parish server, the
// client adapter and the terminal views.
//
// Content entities are modelled as a closed set of tagged records: every
// collection served by the Remote Store has exactly one concrete type that
// implements [Record]. JSON coming off the wire is decoded into these types by
// [DecodeRecord] / [DecodeRecords], so callers never poke at untyped maps.
package models

// Collection names one of the entity collections exposed by the Remote Store.
type Collection string

const (
	Events        Collection = "events"
	Sermons       Collection = "sermons"
	Pastors       Collection = "pastors"
	Gallery       Collection = "gallery"
	Subscribers   Collection = "subscribers"
	Donations     Collection = "donations"
	Notifications Collection = "notifications"
)

var allCollections = []Collection{
	Events,
	Sermons,
	Pastors,
	Gallery,
	Subscribers,
	Donations,
	Notifications,
}

// AllCollections returns every known collection in display order.
func AllCollections() []Collection {
	out := make([]Collection, len(allCollections))
	copy(out, allCollections)
	return out
}

// PublicCollections returns the collections readable without an admin token.
func PublicCollections() []Collection {
	out := make([]Collection, 0, len(allCollections))
	for _, c := range allCollections {
		if c.Public() {
			out = append(out, c)
		}
	}
	return out
}

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	for _, known := range allCollections {
		if c == known {
			return true
		}
	}
	return false
}

// Public reports whether the collection may be listed anonymously.
// Subscribers and donations carry personal data and are admin-only.
func (c Collection) Public() bool {
	switch c {
	case Subscribers, Donations:
		return false
	default:
		return c.Valid()
	}
}

func (c Collection) String() string {
	return string(c)
}
