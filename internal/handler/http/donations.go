// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/models"
)

// confirmDonation is the checkout provider's callback. The body signature
// has already been checked by callbackHashing.
func (h *Handler) confirmDonation(w http.ResponseWriter, r *http.Request) {
	var cb models.DonationCallback
	if err := decodeBody(r, &cb); err != nil {
		writeError(w, r, err)
		return
	}

	donation, err := h.services.DonationService.Confirm(r.Context(), cb)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("reference", donation.Reference).
		Int64("amount", donation.Amount).
		Str("currency", donation.Currency).
		Msg("donation recorded")

	utils.WriteJSON(w, donation, http.StatusCreated)
}

func (h *Handler) uploadURL(w http.ResponseWriter, r *http.Request) {
	var req models.UploadURLRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	upload, err := h.services.MediaService.UploadURL(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, upload, http.StatusOK)
}
