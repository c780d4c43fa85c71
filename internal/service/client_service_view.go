// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/store"
	"golang.org/x/sync/singleflight"
)

type clientViewTracker struct {
	cache   store.IdentityCache
	adapter adapter.ServerAdapter
	group   singleflight.Group
	logger  *logger.Logger
}

func NewClientViewTracker(cache store.IdentityCache, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientViewTracker {
	return &clientViewTracker{
		cache:   cache,
		adapter: serverAdapter,
		logger:  logger,
	}
}

func viewedKey(sermonID, visitorID string) string {
	return "viewed." + sermonID + "." + visitorID
}

// TrackPlayback marks the pair as viewed only after the Remote Store
// confirmed it, so a failed call is retried on the next playback.
func (v *clientViewTracker) TrackPlayback(ctx context.Context, visitorID, sermonID string) (bool, error) {
	if visitorID == "" || sermonID == "" {
		return false, ErrInvalidDataProvided
	}

	key := viewedKey(sermonID, visitorID)

	// only the caller whose function ran reports the count
	var ran bool
	counted, err, _ := v.group.Do(key, func() (any, error) {
		ran = true
		return v.track(ctx, key, visitorID, sermonID)
	})
	if err != nil {
		return false, err
	}
	return ran && counted.(bool), nil
}

func (v *clientViewTracker) track(ctx context.Context, key, visitorID, sermonID string) (bool, error) {
	_, err := v.cache.Get(ctx, key)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		return false, fmt.Errorf("read view marker: %w", err)
	}

	res, err := v.adapter.TrackView(ctx, sermonID, visitorID)
	if err != nil {
		return false, fmt.Errorf("track view of %s: %w", sermonID, err)
	}

	if err = v.cache.Set(ctx, key, "1"); err != nil {
		v.logger.Warn().Err(err).Str("func", "clientViewTracker.track").Str("sermon_id", sermonID).Msg("failed to remember view")
	}

	v.logger.Debug().Str("sermon_id", sermonID).Bool("counted", res.Counted).Int64("views", res.Views).Msg("playback tracked")
	return true, nil
}
