// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/models"
)

// HashHeader carries the hex HMAC-SHA256 of a signed request body.
const HashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress, applies the request timeout and keeps
// appCfg.HashKey for signing donation confirmations.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

// NormalizeBaseURL adds a missing http scheme and strips trailing slashes.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// AppInfo implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) AppInfo(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.request(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/admin/login and reads the bearer token from the Authorization response
// header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/admin/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, Admin: req.Login}, nil
}

// List implements [ServerAdapter] via GET /api/content/{collection}.
func (h *httpServerAdapter) List(ctx context.Context, c models.Collection) ([]models.Record, error) {
	resp, err := h.request(ctx).
		SetPathParam("collection", string(c)).
		Get("/api/content/{collection}")
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", c, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return models.DecodeRecords(c, resp.Body())
}

// Get implements [ServerAdapter] via GET /api/content/{collection}/{id}.
func (h *httpServerAdapter) Get(ctx context.Context, c models.Collection, id string) (models.Record, error) {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"collection": string(c), "id": id}).
		Get("/api/content/{collection}/{id}")
	if err != nil {
		return nil, fmt.Errorf("get %s request: %w", c, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return models.DecodeRecord(c, resp.Body())
}

// Create implements [ServerAdapter] via POST /api/content/{collection}.
func (h *httpServerAdapter) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	c := rec.Collection()

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("collection", string(c)).
		SetBody(rec).
		Post("/api/content/{collection}")
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", c, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return models.DecodeRecord(c, resp.Body())
}

// Update implements [ServerAdapter] via PUT /api/content/{collection}/{id}.
func (h *httpServerAdapter) Update(ctx context.Context, rec models.Record) (models.Record, error) {
	c := rec.Collection()

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"collection": string(c), "id": rec.RecordID()}).
		SetBody(rec).
		Put("/api/content/{collection}/{id}")
	if err != nil {
		return nil, fmt.Errorf("update %s request: %w", c, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return models.DecodeRecord(c, resp.Body())
}

// Delete implements [ServerAdapter] via DELETE /api/content/{collection}/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, c models.Collection, id string) error {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"collection": string(c), "id": id}).
		Delete("/api/content/{collection}/{id}")
	if err != nil {
		return fmt.Errorf("delete %s request: %w", c, err)
	}

	return mapHTTPError(resp)
}

// Subscribe implements [ServerAdapter] via POST /api/subscribe.
func (h *httpServerAdapter) Subscribe(ctx context.Context, sub models.Subscriber) (*models.Subscriber, error) {
	var stored models.Subscriber

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sub).
		SetResult(&stored).
		Post("/api/subscribe")
	if err != nil {
		return nil, fmt.Errorf("subscribe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &stored, nil
}

// RegisterVisitor implements [ServerAdapter] via POST /api/visitors.
func (h *httpServerAdapter) RegisterVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error) {
	var stored models.Visitor

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(v).
		SetResult(&stored).
		Post("/api/visitors")
	if err != nil {
		return models.Visitor{}, fmt.Errorf("register visitor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Visitor{}, err
	}

	return stored, nil
}

// GetVisitor implements [ServerAdapter] via GET /api/visitors/{id}.
func (h *httpServerAdapter) GetVisitor(ctx context.Context, id string) (models.Visitor, error) {
	var stored models.Visitor

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&stored).
		Get("/api/visitors/{id}")
	if err != nil {
		return models.Visitor{}, fmt.Errorf("get visitor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Visitor{}, err
	}

	return stored, nil
}

// UpdateVisitor implements [ServerAdapter] via PUT /api/visitors/{id}.
func (h *httpServerAdapter) UpdateVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error) {
	var stored models.Visitor

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", v.ID).
		SetBody(v).
		SetResult(&stored).
		Put("/api/visitors/{id}")
	if err != nil {
		return models.Visitor{}, fmt.Errorf("update visitor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Visitor{}, err
	}

	return stored, nil
}

// SetReminder implements [ServerAdapter] via
// PUT /api/visitors/{id}/reminders/{eventID}.
func (h *httpServerAdapter) SetReminder(ctx context.Context, visitorID, eventID string) (models.Reminder, error) {
	var stored models.Reminder

	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"id": visitorID, "eventID": eventID}).
		SetResult(&stored).
		Put("/api/visitors/{id}/reminders/{eventID}")
	if err != nil {
		return models.Reminder{}, fmt.Errorf("set reminder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Reminder{}, err
	}

	return stored, nil
}

// ClearReminder implements [ServerAdapter] via
// DELETE /api/visitors/{id}/reminders/{eventID}.
func (h *httpServerAdapter) ClearReminder(ctx context.Context, visitorID, eventID string) error {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"id": visitorID, "eventID": eventID}).
		Delete("/api/visitors/{id}/reminders/{eventID}")
	if err != nil {
		return fmt.Errorf("clear reminder request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListReminders implements [ServerAdapter] via GET /api/visitors/{id}/reminders.
func (h *httpServerAdapter) ListReminders(ctx context.Context, visitorID string) ([]models.Reminder, error) {
	var reminders []models.Reminder

	resp, err := h.request(ctx).
		SetPathParam("id", visitorID).
		SetResult(&reminders).
		Get("/api/visitors/{id}/reminders")
	if err != nil {
		return nil, fmt.Errorf("list reminders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return reminders, nil
}

// TrackView implements [ServerAdapter] via POST /api/sermons/{id}/views.
func (h *httpServerAdapter) TrackView(ctx context.Context, sermonID, visitorID string) (models.ViewResult, error) {
	var result models.ViewResult

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", sermonID).
		SetBody(models.ViewRequest{VisitorID: visitorID}).
		SetResult(&result).
		Post("/api/sermons/{id}/views")
	if err != nil {
		return models.ViewResult{}, fmt.Errorf("track view request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ViewResult{}, err
	}

	return result, nil
}

// ConfirmDonation implements [ServerAdapter] via POST /api/donations/confirm.
// The body is signed with the hash key in the HashSHA256 header.
func (h *httpServerAdapter) ConfirmDonation(ctx context.Context, cb models.DonationCallback) (*models.Donation, error) {
	body, err := json.Marshal(cb)
	if err != nil {
		return nil, fmt.Errorf("encode donation callback: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hashKey != "" {
		req.SetHeader(HashHeader, utils.HashString(body, h.hashKey))
	}

	var donation models.Donation
	resp, err := req.SetResult(&donation).Post("/api/donations/confirm")
	if err != nil {
		return nil, fmt.Errorf("confirm donation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &donation, nil
}

// RequestUploadURL implements [ServerAdapter] via POST /api/media/upload-url.
func (h *httpServerAdapter) RequestUploadURL(ctx context.Context, reqBody models.UploadURLRequest) (models.UploadURL, error) {
	var upload models.UploadURL

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		SetResult(&upload).
		Post("/api/media/upload-url")
	if err != nil {
		return models.UploadURL{}, fmt.Errorf("upload url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadURL{}, err
	}

	return upload, nil
}

// request starts a request carrying ctx and, when logged in, the bearer token.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
