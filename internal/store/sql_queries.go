// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-parish/models"
)

const (
	recordsTable     = "records"
	visitorsTable    = "visitors"
	remindersTable   = "reminders"
	sermonViewsTable = "sermon_views"
	cacheTable       = "cache_entries"
)

var recordColumns = []string{"id", "payload", "created_at", "updated_at"}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) listRecordsQuery(c models.Collection) sq.SelectBuilder {
	return db.builder.
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"collection": string(c)}).
		OrderBy("created_at", "id")
}

func (db *DB) getRecordQuery(c models.Collection, id string) sq.SelectBuilder {
	return db.builder.
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"collection": string(c), "id": id})
}

func (db *DB) insertRecordQuery(c models.Collection, id string, payload []byte, createdAt, updatedAt time.Time) sq.InsertBuilder {
	return db.builder.
		Insert(recordsTable).
		Columns("collection", "id", "payload", "created_at", "updated_at").
		Values(string(c), id, string(payload), createdAt, updatedAt)
}

func (db *DB) updateRecordQuery(c models.Collection, id string, payload []byte, updatedAt time.Time) sq.UpdateBuilder {
	return db.builder.
		Update(recordsTable).
		Set("payload", string(payload)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"collection": string(c), "id": id})
}

func (db *DB) deleteRecordQuery(c models.Collection, id string) sq.DeleteBuilder {
	return db.builder.
		Delete(recordsTable).
		Where(sq.Eq{"collection": string(c), "id": id})
}

// deleteDependentsQuery removes the rows that belong to a record: views of a
// sermon or reminders for an event. Other collections have none.
func (db *DB) deleteDependentsQuery(c models.Collection, id string) (sq.DeleteBuilder, bool) {
	switch c {
	case models.Sermons:
		return db.builder.Delete(sermonViewsTable).Where(sq.Eq{"sermon_id": id}), true
	case models.Events:
		return db.builder.Delete(remindersTable).Where(sq.Eq{"event_id": id}), true
	}
	return sq.DeleteBuilder{}, false
}

func (db *DB) insertVisitorQuery(v models.Visitor, createdAt time.Time) sq.InsertBuilder {
	return db.builder.
		Insert(visitorsTable).
		Columns("id", "name", "email", "created_at").
		Values(v.ID, v.Name, v.Email, createdAt).
		Suffix("ON CONFLICT (id) DO NOTHING")
}

func (db *DB) getVisitorQuery(id string) sq.SelectBuilder {
	return db.builder.
		Select("id", "name", "email", "created_at").
		From(visitorsTable).
		Where(sq.Eq{"id": id})
}

func (db *DB) updateVisitorQuery(v models.Visitor) sq.UpdateBuilder {
	return db.builder.
		Update(visitorsTable).
		Set("name", v.Name).
		Set("email", v.Email).
		Where(sq.Eq{"id": v.ID})
}

func (db *DB) insertReminderQuery(r models.Reminder, createdAt time.Time) sq.InsertBuilder {
	return db.builder.
		Insert(remindersTable).
		Columns("visitor_id", "event_id", "created_at").
		Values(r.VisitorID, r.EventID, createdAt).
		Suffix("ON CONFLICT (visitor_id, event_id) DO NOTHING")
}

func (db *DB) getReminderQuery(visitorID, eventID string) sq.SelectBuilder {
	return db.builder.
		Select("visitor_id", "event_id", "created_at").
		From(remindersTable).
		Where(sq.Eq{"visitor_id": visitorID, "event_id": eventID})
}

func (db *DB) listRemindersQuery(visitorID string) sq.SelectBuilder {
	return db.builder.
		Select("visitor_id", "event_id", "created_at").
		From(remindersTable).
		Where(sq.Eq{"visitor_id": visitorID}).
		OrderBy("created_at", "event_id")
}

func (db *DB) deleteReminderQuery(visitorID, eventID string) sq.DeleteBuilder {
	return db.builder.
		Delete(remindersTable).
		Where(sq.Eq{"visitor_id": visitorID, "event_id": eventID})
}

func (db *DB) insertViewQuery(sermonID, visitorID string, createdAt time.Time) sq.InsertBuilder {
	return db.builder.
		Insert(sermonViewsTable).
		Columns("sermon_id", "visitor_id", "created_at").
		Values(sermonID, visitorID, createdAt).
		Suffix("ON CONFLICT (sermon_id, visitor_id) DO NOTHING")
}

func (db *DB) countViewsQuery() sq.SelectBuilder {
	return db.builder.
		Select("sermon_id", "COUNT(*)").
		From(sermonViewsTable).
		GroupBy("sermon_id")
}

func (db *DB) getCacheQuery(key string) sq.SelectBuilder {
	return db.builder.
		Select("value").
		From(cacheTable).
		Where(sq.Eq{"key": key})
}

func (db *DB) setCacheQuery(key, value string, updatedAt time.Time) sq.InsertBuilder {
	return db.builder.
		Insert(cacheTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at")
}

func (db *DB) deleteCacheQuery(key string) sq.DeleteBuilder {
	return db.builder.
		Delete(cacheTable).
		Where(sq.Eq{"key": key})
}
