// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/internal/utils"
)

// Handler is the root HTTP handler of the Remote Store.
type Handler struct {
	services *service.Services

	// hashKey verifies HashSHA256 signatures on checkout callbacks.
	// Empty refuses every callback.
	hashKey string

	upgrader websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	} else {
		logger.Warn().Msg("no hash key configured, donation callbacks will be refused")
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  hashKey,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}
