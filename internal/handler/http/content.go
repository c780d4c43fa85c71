// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/models"
)

// readableCollection resolves {collection} and checks that the caller may
// read it: private collections need an admin in the context.
func readableCollection(r *http.Request) (models.Collection, error) {
	c, err := collectionParam(r)
	if err != nil {
		return "", err
	}
	if !c.Public() {
		if _, ok := utils.GetAdminFromContext(r.Context()); !ok {
			return "", ErrAdminRequired
		}
	}
	return c, nil
}

func (h *Handler) listContent(w http.ResponseWriter, r *http.Request) {
	c, err := readableCollection(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.services.ContentService.List(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if records == nil {
		records = []models.Record{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	c, err := readableCollection(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rec, err := h.services.ContentService.Get(r.Context(), c, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) createContent(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rec, err := decodeRecord(w, r, c)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stored, err := h.services.ContentService.Create(r.Context(), rec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("collection", c.String()).
		Str("id", stored.RecordID()).
		Msg("record created")

	utils.WriteJSON(w, stored, http.StatusCreated)
}

// updateContent replaces the record named by the URL; an id in the body is
// ignored.
func (h *Handler) updateContent(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rec, err := decodeRecord(w, r, c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	models.RecordBase(rec).ID = chi.URLParam(r, "id")

	stored, err := h.services.ContentService.Update(r.Context(), rec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("collection", c.String()).
		Str("id", stored.RecordID()).
		Msg("record updated")

	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) deleteContent(w http.ResponseWriter, r *http.Request) {
	c, err := collectionParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err = h.services.ContentService.Delete(r.Context(), c, id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("collection", c.String()).
		Str("id", id).
		Msg("record deleted")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var sub models.Subscriber
	if err := decodeBody(r, &sub); err != nil {
		writeError(w, r, err)
		return
	}

	stored, err := h.services.NewsletterService.Subscribe(r.Context(), sub)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stored, http.StatusOK)
}
