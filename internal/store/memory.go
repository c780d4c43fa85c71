// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/go-parish/models"
)

// MemoryStore keeps every server table in process memory. It backs the
// Remote Store when no DSN is configured and the service tests.
type MemoryStore struct {
	mu        sync.RWMutex
	records   map[models.Collection][]models.Record
	visitors  map[string]models.Visitor
	reminders map[string]map[string]models.Reminder
	views     map[string]map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:   make(map[models.Collection][]models.Record),
		visitors:  make(map[string]models.Visitor),
		reminders: make(map[string]map[string]models.Reminder),
		views:     make(map[string]map[string]struct{}),
	}
}

// cloneRecord hands out independent copies so callers can never alias
// stored values.
func cloneRecord(rec models.Record) (models.Record, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	out, err := models.DecodeRecord(rec.Collection(), raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return out, nil
}

func (m *MemoryStore) List(_ context.Context, c models.Collection) ([]models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Record, 0, len(m.records[c]))
	for _, rec := range m.records[c] {
		cp, err := cloneRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

func (m *MemoryStore) Get(_ context.Context, c models.Collection, id string) (models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := models.Find(m.records[c], id)
	if !ok {
		return nil, ErrRecordNotFound
	}
	return cloneRecord(rec)
}

func (m *MemoryStore) Create(_ context.Context, rec models.Record) (models.Record, error) {
	stored, err := cloneRecord(rec)
	if err != nil {
		return nil, err
	}
	base := models.RecordBase(stored)
	created, updated := timeOrNow(base.CreatedAt), timeOrNow(base.UpdatedAt)
	base.CreatedAt, base.UpdatedAt = &created, &updated

	m.mu.Lock()
	defer m.mu.Unlock()

	c := rec.Collection()
	if _, exists := models.Find(m.records[c], base.ID); exists {
		return nil, ErrRecordAlreadyExists
	}
	m.records[c] = append(m.records[c], stored)

	return cloneRecord(stored)
}

func (m *MemoryStore) Update(_ context.Context, rec models.Record) (models.Record, error) {
	stored, err := cloneRecord(rec)
	if err != nil {
		return nil, err
	}
	base := models.RecordBase(stored)

	m.mu.Lock()
	defer m.mu.Unlock()

	c := rec.Collection()
	prev, ok := models.Find(m.records[c], base.ID)
	if !ok {
		return nil, ErrRecordNotFound
	}
	base.CreatedAt = models.RecordBase(prev).CreatedAt
	updated := timeOrNow(base.UpdatedAt)
	base.UpdatedAt = &updated

	m.records[c] = models.Upsert(m.records[c], stored)

	return cloneRecord(stored)
}

// Delete also drops the views of a sermon or the reminders for an event.
func (m *MemoryStore) Delete(_ context.Context, c models.Collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := models.Find(m.records[c], id); !ok {
		return ErrRecordNotFound
	}
	m.records[c] = models.Remove(m.records[c], id)

	switch c {
	case models.Sermons:
		delete(m.views, id)
	case models.Events:
		for _, byEvent := range m.reminders {
			delete(byEvent, id)
		}
	}
	return nil
}

func (m *MemoryStore) SaveVisitor(_ context.Context, v models.Visitor) (models.Visitor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.visitors[v.ID]; ok {
		return existing, nil
	}
	created := timeOrNow(v.CreatedAt)
	v.CreatedAt = &created
	m.visitors[v.ID] = v
	return v, nil
}

func (m *MemoryStore) GetVisitor(_ context.Context, id string) (models.Visitor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.visitors[id]
	if !ok {
		return models.Visitor{}, ErrRecordNotFound
	}
	return v, nil
}

func (m *MemoryStore) UpdateVisitor(_ context.Context, v models.Visitor) (models.Visitor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.visitors[v.ID]
	if !ok {
		return models.Visitor{}, ErrRecordNotFound
	}
	existing.Name = v.Name
	existing.Email = v.Email
	m.visitors[v.ID] = existing
	return existing, nil
}

func (m *MemoryStore) AddReminder(_ context.Context, r models.Reminder) (models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.reminders[r.VisitorID]
	if !ok {
		byEvent = make(map[string]models.Reminder)
		m.reminders[r.VisitorID] = byEvent
	}
	if existing, ok := byEvent[r.EventID]; ok {
		return existing, nil
	}
	created := timeOrNow(r.CreatedAt)
	r.CreatedAt = &created
	byEvent[r.EventID] = r
	return r, nil
}

func (m *MemoryStore) RemoveReminder(_ context.Context, visitorID, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.reminders[visitorID], eventID)
	return nil
}

func (m *MemoryStore) ListReminders(_ context.Context, visitorID string) ([]models.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Reminder, 0, len(m.reminders[visitorID]))
	for _, r := range m.reminders[visitorID] {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(*out[j].CreatedAt) {
			return out[i].EventID < out[j].EventID
		}
		return out[i].CreatedAt.Before(*out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) RecordView(_ context.Context, sermonID, visitorID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	viewers, ok := m.views[sermonID]
	if !ok {
		viewers = make(map[string]struct{})
		m.views[sermonID] = viewers
	}
	if _, seen := viewers[visitorID]; seen {
		return false, nil
	}
	viewers[visitorID] = struct{}{}
	return true, nil
}

func (m *MemoryStore) CountViews(_ context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int64, len(m.views))
	for sermonID, viewers := range m.views {
		if len(viewers) > 0 {
			counts[sermonID] = int64(len(viewers))
		}
	}
	return counts, nil
}
