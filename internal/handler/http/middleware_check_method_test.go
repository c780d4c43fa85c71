// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux for method checks without services.
func buildRouter() *chi.Mux {
	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }
	}

	router := chi.NewRouter()
	router.Get("/api/items", ok(http.StatusOK))
	router.Post("/api/items", ok(http.StatusCreated))
	router.Get("/api/items/{id}", ok(http.StatusOK))
	router.Delete("/api/items/{id}", ok(http.StatusNoContent))
	router.Group(func(r chi.Router) {
		r.Put("/api/items/{id}", ok(http.StatusOK))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{"registered GET passes", http.MethodGet, "/api/items", http.StatusOK, ""},
		{"registered POST passes", http.MethodPost, "/api/items", http.StatusCreated, ""},
		{"route registered in a group passes", http.MethodPut, "/api/items/7", http.StatusOK, ""},
		{"wrong method on static path", http.MethodDelete, "/api/items", http.StatusMethodNotAllowed, "GET, POST"},
		{"wrong method on param path", http.MethodPost, "/api/items/7", http.StatusMethodNotAllowed, "GET, PUT, DELETE"},
		{"unknown path", http.MethodGet, "/api/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
		})
	}
}
