// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/internal/utils"
)

func TestCallbackHashing_TableTest(t *testing.T) {
	const body = `{"amount":2500,"currency":"EUR","status":"successful"}`

	tests := []struct {
		name       string
		hashKey    string
		signature  string
		wantStatus int
		wantNext   bool
	}{
		{"valid signature", testHashKey, utils.HashString([]byte(body), testHashKey), http.StatusOK, true},
		{"signed with another key", testHashKey, utils.HashString([]byte(body), "other"), http.StatusBadRequest, false},
		{"missing signature", testHashKey, "", http.StatusBadRequest, false},
		{"no key configured refuses unsigned callbacks", "", "", http.StatusNotImplemented, false},
		{"no key configured refuses signed callbacks", "", utils.HashString([]byte(body), "guess"), http.StatusNotImplemented, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, tt.hashKey, logger.Nop())

			var nextBody string
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				raw, _ := io.ReadAll(r.Body)
				nextBody = string(raw)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/donations/confirm", strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(HashHeader, tt.signature)
			}
			rr := httptest.NewRecorder()
			h.callbackHashing(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, body, nextBody, "body must be restored for the handler")
			}
		})
	}
}
