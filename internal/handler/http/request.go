// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/models"
)

// decodeBody decodes a JSON request body into dst. Malformed input is
// reported as ErrInvalidJSON so it maps to 400.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeRecord reads the body as a record of collection c.
func decodeRecord(w http.ResponseWriter, r *http.Request, c models.Collection) (models.Record, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, utils.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if len(body) == 0 {
		return nil, utils.ErrEmptyBody
	}

	rec, err := models.DecodeRecord(c, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return rec, nil
}

// collectionParam returns the {collection} URL parameter, rejecting names
// that are not a known collection.
func collectionParam(r *http.Request) (models.Collection, error) {
	c := models.Collection(chi.URLParam(r, "collection"))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownCollection, string(c))
	}
	return c, nil
}
