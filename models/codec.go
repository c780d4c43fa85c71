// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownCollection is returned when a collection name does not match any
// known [Collection].
var ErrUnknownCollection = errors.New("unknown collection")

// NewRecord returns an empty record of the concrete type behind c.
func NewRecord(c Collection) (Record, error) {
	switch c {
	case Events:
		return &Event{}, nil
	case Sermons:
		return &Sermon{}, nil
	case Pastors:
		return &Pastor{}, nil
	case Gallery:
		return &GalleryImage{}, nil
	case Subscribers:
		return &Subscriber{}, nil
	case Donations:
		return &Donation{}, nil
	case Notifications:
		return &Notification{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, string(c))
	}
}

// DecodeRecord decodes a single JSON object into the record type of c.
func DecodeRecord(c Collection, raw []byte) (Record, error) {
	rec, err := NewRecord(c)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(raw, rec); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", c, err)
	}
	return rec, nil
}

// DecodeRecords decodes a JSON array into records of c, preserving order.
// A JSON null decodes to an empty, non-nil slice.
func DecodeRecords(c Collection, raw []byte) ([]Record, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", c, err)
	}

	out := make([]Record, 0, len(items))
	for i, item := range items {
		rec, err := DecodeRecord(c, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
