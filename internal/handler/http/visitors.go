// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/models"
)

func (h *Handler) registerVisitor(w http.ResponseWriter, r *http.Request) {
	var visitor models.Visitor
	if err := decodeBody(r, &visitor); err != nil {
		writeError(w, r, err)
		return
	}

	stored, err := h.services.VisitorService.Register(r.Context(), visitor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) getVisitor(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.services.VisitorService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, visitor, http.StatusOK)
}

func (h *Handler) updateVisitor(w http.ResponseWriter, r *http.Request) {
	var visitor models.Visitor
	if err := decodeBody(r, &visitor); err != nil {
		writeError(w, r, err)
		return
	}
	visitor.ID = chi.URLParam(r, "id")

	updated, err := h.services.VisitorService.UpdateProfile(r.Context(), visitor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.services.VisitorService.ListReminders(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}

	utils.WriteJSON(w, reminders, http.StatusOK)
}

func (h *Handler) setReminder(w http.ResponseWriter, r *http.Request) {
	reminder, err := h.services.VisitorService.SetReminder(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "eventID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reminder, http.StatusOK)
}

func (h *Handler) clearReminder(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VisitorService.ClearReminder(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "eventID")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) trackView(w http.ResponseWriter, r *http.Request) {
	var req models.ViewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ViewService.TrackView(r.Context(), chi.URLParam(r, "id"), req.VisitorID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
