// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the Remote Store.
// A check succeeds only when the content store answers.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

// Handler serves grpc.health.v1.Health. Watch and List come from the
// embedded health.Server; Check additionally probes the content store.
type Handler struct {
	*health.Server

	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		Server:   health.NewServer(),
		services: services,
		logger:   logger,
	}
}

// Register installs the health service on srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h)
}

func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if _, err := h.services.ContentService.List(ctx, models.Events); err != nil {
		h.logger.Err(err).Str("func", "*Handler.Check").Msg("content store probe failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return h.Server.Check(ctx, req)
}
