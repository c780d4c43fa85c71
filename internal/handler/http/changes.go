// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-parish/internal/logger"
)

const (
	changesWriteWait  = 10 * time.Second
	changesPongWait   = 60 * time.Second
	changesPingPeriod = changesPongWait * 9 / 10
)

// changes upgrades to a websocket and streams a models.ChangeEvent for every
// successful mutation until the peer goes away. Hints are best effort:
// events published while the socket is slow are dropped by the notifier.
func (h *Handler) changes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// subscribe before the handshake completes so no mutation made after
	// the client sees the 101 is missed
	events, unsubscribe := h.services.ChangeNotifier.Subscribe()
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		log.Debug().Err(err).Msg("change feed upgrade failed")
		return
	}
	defer conn.Close()

	log.Debug().Msg("change feed subscriber connected")

	// the feed is one-way; reading only serves pongs and close frames
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(changesPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(changesPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Debug().Err(err).Msg("change feed read failed")
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(changesPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(changesWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				log.Debug().Err(err).Msg("change feed write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(changesWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-gone:
			log.Debug().Msg("change feed subscriber disconnected")
			return
		case <-r.Context().Done():
			return
		}
	}
}
