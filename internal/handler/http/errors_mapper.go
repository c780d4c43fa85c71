// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/internal/store"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrAdminRequired:              http.StatusUnauthorized,
	ErrIntegrityCheckFailed:       http.StatusBadRequest,
	ErrCallbacksDisabled:          http.StatusNotImplemented,

	utils.ErrEmptyBody:          http.StatusBadRequest,
	validators.ErrValidation:    http.StatusBadRequest,
	models.ErrUnknownCollection: http.StatusNotFound,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnknownCollection:       http.StatusNotFound,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAdminDisabled:           http.StatusNotImplemented,
	service.ErrVisitorNotRegistered:    http.StatusConflict,
	service.ErrNotASermon:              http.StatusNotFound,
	service.ErrMediaNotConfigured:      http.StatusNotImplemented,
	service.ErrPresignFailed:           http.StatusBadGateway,
	service.ErrDonationNotConfirmed:    http.StatusUnprocessableEntity,

	store.ErrRecordNotFound:      http.StatusNotFound,
	store.ErrRecordAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
	store.ErrEncodingPayload:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with a models.ErrorResponse. Internal
// errors are reported by status text only; validation errors carry their
// per-field messages.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	resp := models.ErrorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		resp.Error = http.StatusText(status)
	}

	var fields validators.FieldErrors
	if errors.As(err, &fields) {
		resp.Error = validators.ErrValidation.Error()
		resp.Fields = fields
	}

	utils.WriteJSON(w, resp, status)
}
