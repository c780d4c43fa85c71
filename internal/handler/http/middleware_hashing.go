// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-parish/internal/utils"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "HashSHA256"

// callbackHashing verifies that a checkout callback body was signed with the
// shared hash key. Without a configured key every callback is refused.
func (h *Handler) callbackHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			writeError(w, r, ErrCallbacksDisabled)
			return
		}

		h.logger.Debug().Str("func", "*Handler.callbackHashing").Msg("checking hash begins")

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, utils.MaxBodyBytes))
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.callbackHashing").Msg("failed to read request body")
			writeError(w, r, ErrInvalidJSON)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(HashHeader)
		if !utils.VerifyHash(body, signature) {
			h.logger.Error().Str("func", "*Handler.callbackHashing").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			writeError(w, r, ErrIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
