// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-parish/models"
)

func testEvent() *models.Event {
	return &models.Event{
		Title:    "Harvest festival",
		Location: "Parish hall",
		StartsAt: time.Date(2026, 10, 25, 10, 0, 0, 0, time.UTC),
	}
}

// ── read access ─────────────────────────────────────────────────────────────

func TestListContent_Access(t *testing.T) {
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	tests := []struct {
		name       string
		path       string
		headers    map[string]string
		wantStatus int
	}{
		{"public collection anonymously", "/api/content/events", nil, http.StatusOK},
		{"public collection as admin", "/api/content/sermons", admin, http.StatusOK},
		{"private collection anonymously", "/api/content/donations", nil, http.StatusUnauthorized},
		{"private collection as admin", "/api/content/subscribers", admin, http.StatusOK},
		{"broken token on public collection", "/api/content/events", map[string]string{"Authorization": "Bearer junk"}, http.StatusUnauthorized},
		{"unknown collection", "/api/content/hymns", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, srv, http.MethodGet, tt.path, nil, tt.headers)
			assert.Equal(t, tt.wantStatus, resp.status, string(resp.body))
		})
	}
}

func TestListContent_EmptyCollectionIsArray(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/content/gallery", nil, nil)

	require.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `[]`, string(resp.body))
}

// ── mutations ───────────────────────────────────────────────────────────────

func TestCreateContent_RequiresAdmin(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/content/events", testEvent(), nil)

	assert.Equal(t, http.StatusUnauthorized, resp.status)

	var errResp models.ErrorResponse
	resp.decode(t, &errResp)
	assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), errResp.Error)
}

func TestContent_CreateUpdateDeleteRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	resp := doRequest(t, srv, http.MethodPost, "/api/content/events", testEvent(), admin)
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))

	var created models.Event
	resp.decode(t, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Harvest festival", created.Title)
	assert.NotNil(t, created.CreatedAt)

	// anonymous readers see the new event
	resp = doRequest(t, srv, http.MethodGet, "/api/content/events/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, resp.status)

	update := created
	update.ID = "ignored"
	update.Title = "Harvest festival (moved)"
	resp = doRequest(t, srv, http.MethodPut, "/api/content/events/"+created.ID, update, admin)
	require.Equal(t, http.StatusOK, resp.status, string(resp.body))

	var updated models.Event
	resp.decode(t, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Harvest festival (moved)", updated.Title)

	resp = doRequest(t, srv, http.MethodGet, "/api/content/events", nil, nil)
	records, err := models.DecodeRecords(models.Events, resp.body)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Harvest festival (moved)", records[0].(*models.Event).Title)

	resp = doRequest(t, srv, http.MethodDelete, "/api/content/events/"+created.ID, nil, admin)
	assert.Equal(t, http.StatusNoContent, resp.status)
	assert.Empty(t, resp.body)

	resp = doRequest(t, srv, http.MethodDelete, "/api/content/events/"+created.ID, nil, admin)
	assert.Equal(t, http.StatusNotFound, resp.status)

	resp = doRequest(t, srv, http.MethodGet, "/api/content/events/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.status)
}

func TestCreateContent_ValidationErrorsCarryFields(t *testing.T) {
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	sermon := models.Sermon{MediaURL: "not a url", MediaKind: "podcast"}
	resp := doRequest(t, srv, http.MethodPost, "/api/content/sermons", sermon, admin)

	require.Equal(t, http.StatusBadRequest, resp.status, string(resp.body))

	var errResp models.ErrorResponse
	resp.decode(t, &errResp)
	assert.Equal(t, "validation failed", errResp.Error)
	assert.Contains(t, errResp.Fields, "title")
	assert.Contains(t, errResp.Fields, "media_url")
	assert.Contains(t, errResp.Fields, "media_kind")

	resp = doRequest(t, srv, http.MethodGet, "/api/content/sermons", nil, nil)
	assert.JSONEq(t, `[]`, string(resp.body))
}

func TestCreateContent_BadBodies(t *testing.T) {
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	tests := []struct {
		name       string
		path       string
		body       any
		wantStatus int
	}{
		{"empty body", "/api/content/events", nil, http.StatusBadRequest},
		{"malformed json", "/api/content/events", `{"title":`, http.StatusBadRequest},
		{"wrong shape", "/api/content/events", `[1,2,3]`, http.StatusBadRequest},
		{"unknown collection", "/api/content/hymns", testEvent(), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, srv, http.MethodPost, tt.path, tt.body, admin)
			assert.Equal(t, tt.wantStatus, resp.status, string(resp.body))
		})
	}
}

func TestUpdateContent_UnknownIDReturns404(t *testing.T) {
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	resp := doRequest(t, srv, http.MethodPut, "/api/content/events/missing", testEvent(), admin)

	assert.Equal(t, http.StatusNotFound, resp.status, string(resp.body))
}

// ── newsletter ──────────────────────────────────────────────────────────────

func TestSubscribe_DeduplicatesByEmail(t *testing.T) {
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	first := doRequest(t, srv, http.MethodPost, "/api/subscribe", models.Subscriber{Email: "Ruth@Example.org", Name: "Ruth"}, nil)
	require.Equal(t, http.StatusOK, first.status, string(first.body))
	second := doRequest(t, srv, http.MethodPost, "/api/subscribe", models.Subscriber{Email: "ruth@example.org"}, nil)
	require.Equal(t, http.StatusOK, second.status)

	var a, b models.Subscriber
	first.decode(t, &a)
	second.decode(t, &b)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "ruth@example.org", a.Email)

	resp := doRequest(t, srv, http.MethodGet, "/api/content/subscribers", nil, admin)
	records, err := models.DecodeRecords(models.Subscribers, resp.body)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/api/subscribe", models.Subscriber{Email: "not-an-email"}, nil)

	require.Equal(t, http.StatusBadRequest, resp.status)
	var errResp models.ErrorResponse
	resp.decode(t, &errResp)
	assert.Contains(t, errResp.Fields, "email")
}
