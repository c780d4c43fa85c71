// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

// probeContent satisfies service.ContentService; only List is exercised.
type probeContent struct {
	service.ContentService
	err error
}

func (p *probeContent) List(context.Context, models.Collection) ([]models.Record, error) {
	return nil, p.err
}

func newHealthClient(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.LoggingInterceptor))
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHandler_Check(t *testing.T) {
	tests := []struct {
		name     string
		probeErr error
		want     healthpb.HealthCheckResponse_ServingStatus
	}{
		{"store answers", nil, healthpb.HealthCheckResponse_SERVING},
		{"store is down", errors.New("connection refused"), healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{ContentService: &probeContent{err: tt.probeErr}}, logger.Nop())
			client := newHealthClient(t, h)

			resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetStatus())
		})
	}
}

func TestHandler_CheckAfterShutdown(t *testing.T) {
	h := NewHandler(&service.Services{ContentService: &probeContent{}}, logger.Nop())
	client := newHealthClient(t, h)

	h.Shutdown()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
