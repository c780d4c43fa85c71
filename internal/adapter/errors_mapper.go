// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-parish/models"
)

// StatusError carries the decoded error body of a failed Remote Store call.
// It unwraps to the sentinel matching the status code.
type StatusError struct {
	StatusCode int
	Message    string
	Fields     map[string]string

	sentinel error
}

func (e *StatusError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		msg = msg + " (" + strings.Join(parts, "; ") + ")"
	}

	if e.sentinel == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s", e.sentinel, msg)
}

func (e *StatusError) Unwrap() error {
	return e.sentinel
}

// FieldErrors extracts per-field validation messages from err, if any.
func FieldErrors(err error) map[string]string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Fields
	}
	return nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode()}

	body := strings.TrimSpace(string(resp.Body()))
	var errResp models.ErrorResponse
	if json.Unmarshal(resp.Body(), &errResp) == nil && errResp.Error != "" {
		statusErr.Message = errResp.Error
		statusErr.Fields = errResp.Fields
	} else {
		statusErr.Message = body
	}
	if statusErr.Message == "" {
		statusErr.Message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		statusErr.sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.sentinel = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.sentinel = ErrForbidden
	case http.StatusNotFound:
		statusErr.sentinel = ErrNotFound
	case http.StatusConflict:
		statusErr.sentinel = ErrConflict
	case http.StatusNotImplemented:
		statusErr.sentinel = ErrNotImplemented
	case http.StatusBadGateway:
		statusErr.sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr.sentinel = ErrInternalServerError
	}

	return statusErr
}
