// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/store"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/models"
)

type contentService struct {
	contentRepository store.ContentRepository
	viewRepository    store.ViewRepository

	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewContentService(contentRepository store.ContentRepository, viewRepository store.ViewRepository, logger *logger.Logger) ContentService {
	return &contentService{
		contentRepository: contentRepository,
		viewRepository:    viewRepository,
		idGenerator:       utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (s *contentService) List(ctx context.Context, c models.Collection) ([]models.Record, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, string(c))
	}

	records, err := s.contentRepository.List(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", c, err)
	}

	if err = s.withViews(ctx, records...); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *contentService) Get(ctx context.Context, c models.Collection, id string) (models.Record, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, string(c))
	}

	rec, err := s.contentRepository.Get(ctx, c, id)
	if err != nil {
		return nil, fmt.Errorf("error getting %s %s: %w", c, id, err)
	}

	if err = s.withViews(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *contentService) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	if rec == nil {
		return nil, ErrInvalidDataProvided
	}
	return s.create(ctx, rec, s.idGenerator.Generate())
}

func (s *contentService) CreateWithID(ctx context.Context, rec models.Record) (models.Record, error) {
	if rec == nil || rec.RecordID() == "" {
		return nil, ErrInvalidDataProvided
	}
	return s.create(ctx, rec, rec.RecordID())
}

func (s *contentService) create(ctx context.Context, rec models.Record, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	base := models.RecordBase(rec)
	base.ID = id
	base.CreatedAt = &now
	base.UpdatedAt = &now
	resetServerFields(rec)

	created, err := s.contentRepository.Create(ctx, rec)
	if err != nil {
		log.Err(err).
			Str("func", "contentService.Create").
			Str("collection", string(rec.Collection())).
			Msg("record creation ended with error")
		return nil, fmt.Errorf("error creating %s: %w", rec.Collection(), err)
	}

	return created, nil
}

func (s *contentService) Update(ctx context.Context, rec models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if rec == nil || rec.RecordID() == "" {
		return nil, ErrInvalidDataProvided
	}

	now := time.Now().UTC()
	base := models.RecordBase(rec)
	base.CreatedAt = nil
	base.UpdatedAt = &now
	resetServerFields(rec)

	updated, err := s.contentRepository.Update(ctx, rec)
	if err != nil {
		log.Err(err).
			Str("func", "contentService.Update").
			Str("collection", string(rec.Collection())).
			Str("id", rec.RecordID()).
			Msg("record update ended with error")
		return nil, fmt.Errorf("error updating %s %s: %w", rec.Collection(), rec.RecordID(), err)
	}

	if err = s.withViews(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *contentService) Delete(ctx context.Context, c models.Collection, id string) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, string(c))
	}

	if err := s.contentRepository.Delete(ctx, c, id); err != nil {
		return fmt.Errorf("error deleting %s %s: %w", c, id, err)
	}
	return nil
}

// withViews fills in the view counts of any sermons among records.
func (s *contentService) withViews(ctx context.Context, records ...models.Record) error {
	var sermons []*models.Sermon
	for _, rec := range records {
		if sermon, ok := rec.(*models.Sermon); ok {
			sermons = append(sermons, sermon)
		}
	}
	if len(sermons) == 0 {
		return nil
	}

	counts, err := s.viewRepository.CountViews(ctx)
	if err != nil {
		return fmt.Errorf("error counting views: %w", err)
	}
	for _, sermon := range sermons {
		sermon.Views = counts[sermon.ID]
	}
	return nil
}

// resetServerFields clears values only the server may set.
func resetServerFields(rec models.Record) {
	switch r := rec.(type) {
	case *models.Sermon:
		r.Views = 0
	case *models.Donation:
		r.Status = models.DonationConfirmed
	}
}
