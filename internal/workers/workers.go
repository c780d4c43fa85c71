// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-parish/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers groups workers for a joint run. Nil workers are skipped.
func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	list := make([]Worker, 0, len(workers))
	for _, w := range workers {
		if w != nil {
			list = append(list, w)
		}
	}
	return &Workers{workers: list, logger: logger}
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned. The first real failure cancels the others and is returned;
// context cancellation is a clean stop.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			err := worker.Run(gctx)
			if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			w.logger.Err(err).Str("func", "Workers.Run").Msg("worker stopped with error")
			return err
		})
	}
	return g.Wait()
}

func (w *Workers) Len() int {
	return len(w.workers)
}
