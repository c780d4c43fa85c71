// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/handler"
	"github.com/MKhiriev/go-parish/internal/logger"
)

// listener is one transport of the Remote Store.
type listener interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer prepares the REST listener when an HTTP address is configured
// and the gRPC health listener when a gRPC address is. At least one of them
// must be enabled.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.gRPCServer = grpcSrv
	}

	if len(s.listeners()) == 0 {
		return nil, errNoServersAreCreated
	}

	logger.Info().
		Str("http", cfg.HTTPAddress).
		Str("grpc", cfg.GRPCAddress).
		Msg("parish server prepared")

	return s, nil
}

func (s *server) listeners() []listener {
	var out []listener
	if s.httpServer != nil {
		out = append(out, s.httpServer)
	}
	if s.gRPCServer != nil {
		out = append(out, s.gRPCServer)
	}
	return out
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	for _, l := range s.listeners() {
		l.Shutdown()
	}
}

// run serves every listener until ctx is done, then stops them and waits
// for their serve loops to return.
func (s *server) run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, l := range s.listeners() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.RunServer()
		}()
	}

	<-ctx.Done()
	s.logger.Info().Msg("stopping parish server")

	s.Shutdown()
	wg.Wait()
	s.logger.Info().Msg("parish server stopped")
}
