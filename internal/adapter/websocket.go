// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/models"
)

const (
	changesPath      = "/api/changes"
	handshakeTimeout = 10 * time.Second
	defaultReconnect = 5 * time.Second
)

type wsChangeListener struct {
	url            string
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
	running        atomic.Bool

	logger *logger.Logger
}

// NewChangeListener returns a [ChangeListener] for the Remote Store at
// baseURL. The http(s) scheme is rewritten to ws(s).
func NewChangeListener(baseURL string, reconnectDelay time.Duration, log *logger.Logger) (ChangeListener, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid change feed address: %w", err)
	}
	if reconnectDelay <= 0 {
		reconnectDelay = defaultReconnect
	}

	return &wsChangeListener{
		url:            "ws" + strings.TrimPrefix(normalized, "http") + changesPath,
		reconnectDelay: reconnectDelay,
		dialer:         &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		logger:         log.WithComponent("change_listener"),
	}, nil
}

func (l *wsChangeListener) Listen(ctx context.Context, onChange func(models.ChangeEvent)) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrListenerRunning
	}
	defer l.running.Store(false)

	for {
		err := l.listenOnce(ctx, onChange)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.logger.Warn().Err(err).Str("url", l.url).Dur("retry_in", l.reconnectDelay).Msg("change feed disconnected")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.reconnectDelay):
		}
	}
}

// listenOnce runs a single connection until it fails or ctx ends.
func (l *wsChangeListener) listenOnce(ctx context.Context, onChange func(models.ChangeEvent)) error {
	conn, resp, err := l.dialer.DialContext(ctx, l.url, http.Header{})
	if err != nil {
		if resp != nil {
			return fmt.Errorf("websocket connect failed (HTTP %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("websocket connect failed: %w", err)
	}
	defer conn.Close()

	l.logger.Debug().Str("url", l.url).Msg("change feed connected")

	// unblock ReadJSON on shutdown
	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	for {
		var event models.ChangeEvent
		if err = conn.ReadJSON(&event); err != nil {
			return fmt.Errorf("read change event: %w", err)
		}
		if !event.Collection.Valid() {
			l.logger.Debug().Str("collection", string(event.Collection)).Msg("ignoring change for unknown collection")
			continue
		}
		onChange(event)
	}
}
