// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/store"
	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
)

type viewService struct {
	viewRepository    store.ViewRepository
	contentRepository store.ContentRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewViewService(viewRepository store.ViewRepository, contentRepository store.ContentRepository, validator validators.Validator, logger *logger.Logger) ViewService {
	return &viewService{
		viewRepository:    viewRepository,
		contentRepository: contentRepository,
		validator:         validator,
		logger:            logger,
	}
}

// TrackView counts the first playback of sermonID by visitorID. Visitors do
// not have to be registered: registration is best-effort on the client.
func (s *viewService) TrackView(ctx context.Context, sermonID, visitorID string) (models.ViewResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.ViewRequest{VisitorID: visitorID}); err != nil {
		return models.ViewResult{}, fmt.Errorf("view request is invalid: %w", err)
	}

	_, err := s.contentRepository.Get(ctx, models.Sermons, sermonID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.ViewResult{}, ErrNotASermon
	}
	if err != nil {
		return models.ViewResult{}, fmt.Errorf("error finding sermon: %w", err)
	}

	counted, err := s.viewRepository.RecordView(ctx, sermonID, visitorID)
	if err != nil {
		log.Err(err).Str("func", "viewService.TrackView").Str("sermon_id", sermonID).Msg("recording view ended with error")
		return models.ViewResult{}, fmt.Errorf("error recording view: %w", err)
	}

	counts, err := s.viewRepository.CountViews(ctx)
	if err != nil {
		return models.ViewResult{}, fmt.Errorf("error counting views: %w", err)
	}

	log.Debug().Str("sermon_id", sermonID).Bool("counted", counted).Int64("views", counts[sermonID]).Msg("view tracked")

	return models.ViewResult{Counted: counted, Views: counts[sermonID]}, nil
}
