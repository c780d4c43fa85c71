// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncSnapshot is the published state of the synchronization hook: the last
// successfully fetched records per collection plus the status of the cycle
// that produced them.
//
// A SyncSnapshot is a value. The hook publishes a new one for every state
// change and never modifies a published one, so readers need no locking.
// Records returns a fresh slice; the records themselves are shared and must be
// treated as read-only (use [Upsert] and [Remove] to derive local copies).
type SyncSnapshot struct {
	collections map[Collection][]Record

	// Loading is true while at least one fetch cycle is in flight.
	Loading bool

	// Err describes the most recent failed cycle. It is cleared by the next
	// successful one.
	Err error

	// LastSyncedAt is when the collections were last replaced. Zero until the
	// first successful cycle.
	LastSyncedAt time.Time
}

// Records returns a copy of the records held for c, in server order.
func (s SyncSnapshot) Records(c Collection) []Record {
	records := s.collections[c]
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// Has reports whether c has been fetched at least once.
func (s SyncSnapshot) Has(c Collection) bool {
	_, ok := s.collections[c]
	return ok
}

// Collections lists the fetched collections in display order.
func (s SyncSnapshot) Collections() []Collection {
	out := make([]Collection, 0, len(s.collections))
	for _, c := range allCollections {
		if _, ok := s.collections[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ErrorMessage returns Err as text, or "" when the last cycle succeeded.
func (s SyncSnapshot) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// WithCollections returns a copy of s where every collection in staged
// replaces the held one. Collections not in staged are kept.
func (s SyncSnapshot) WithCollections(staged map[Collection][]Record) SyncSnapshot {
	next := s
	next.collections = make(map[Collection][]Record, len(s.collections)+len(staged))
	for c, records := range s.collections {
		next.collections[c] = records
	}
	for c, records := range staged {
		cp := make([]Record, len(records))
		copy(cp, records)
		next.collections[c] = cp
	}
	return next
}
