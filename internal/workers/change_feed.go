// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

// ChangeFeedWorker turns change-feed events into out-of-band refreshes of the
// sync hooks. The feed is only a hint: events arriving while a refresh runs
// collapse into a single follow-up refresh, and hooks nobody holds are
// skipped.
type ChangeFeedWorker struct {
	listener adapter.ChangeListener
	syncers  []service.Syncer
	logger   *logger.Logger

	hints chan struct{}
}

func NewChangeFeedWorker(listener adapter.ChangeListener, logger *logger.Logger, syncers ...service.Syncer) *ChangeFeedWorker {
	return &ChangeFeedWorker{
		listener: listener,
		syncers:  syncers,
		logger:   logger.WithComponent("change_feed"),
		hints:    make(chan struct{}, 1),
	}
}

func (w *ChangeFeedWorker) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.listener.Listen(gctx, w.hint)
	})
	g.Go(func() error {
		return w.refreshLoop(gctx)
	})
	return g.Wait()
}

func (w *ChangeFeedWorker) hint(ev models.ChangeEvent) {
	w.logger.Debug().
		Str("collection", ev.Collection.String()).
		Str("op", string(ev.Op)).
		Str("id", ev.ID).
		Msg("change hint received")

	select {
	case w.hints <- struct{}{}:
	default:
	}
}

func (w *ChangeFeedWorker) refreshLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.hints:
			w.refresh(ctx)
		}
	}
}

func (w *ChangeFeedWorker) refresh(ctx context.Context) {
	for _, s := range w.syncers {
		err := s.Refresh(ctx)
		switch {
		case err == nil, errors.Is(err, service.ErrSyncInactive), ctx.Err() != nil:
		default:
			w.logger.Warn().Err(err).Msg("refresh after change hint failed")
		}
	}
}
