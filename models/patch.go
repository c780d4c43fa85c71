// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Upsert returns a new slice where the record with rec's ID is replaced by
// rec, or rec is appended when no such record exists. The input slice is
// never modified, so it is safe to call on slices taken from a published
// snapshot.
func Upsert(records []Record, rec Record) []Record {
	out := make([]Record, 0, len(records)+1)
	replaced := false
	for _, r := range records {
		if r.RecordID() == rec.RecordID() {
			out = append(out, rec)
			replaced = true
			continue
		}
		out = append(out, r)
	}
	if !replaced {
		out = append(out, rec)
	}
	return out
}

// Remove returns a new slice without the record identified by id.
// Removing an unknown id returns an equal copy.
func Remove(records []Record, id string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.RecordID() != id {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the record identified by id.
func Find(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.RecordID() == id {
			return r, true
		}
	}
	return nil, false
}
