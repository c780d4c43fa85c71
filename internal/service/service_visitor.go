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

type visitorService struct {
	visitorRepository store.VisitorRepository
	contentRepository store.ContentRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewVisitorService(visitorRepository store.VisitorRepository, contentRepository store.ContentRepository, validator validators.Validator, logger *logger.Logger) VisitorService {
	return &visitorService{
		visitorRepository: visitorRepository,
		contentRepository: contentRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (s *visitorService) Register(ctx context.Context, v models.Visitor) (models.Visitor, error) {
	log := logger.FromContext(ctx)

	v.CreatedAt = nil
	if err := s.validator.Validate(ctx, v); err != nil {
		return models.Visitor{}, fmt.Errorf("visitor is invalid: %w", err)
	}

	stored, err := s.visitorRepository.SaveVisitor(ctx, v)
	if err != nil {
		log.Err(err).Str("func", "visitorService.Register").Str("visitor_id", v.ID).Msg("visitor registration ended with error")
		return models.Visitor{}, fmt.Errorf("error registering visitor: %w", err)
	}
	return stored, nil
}

func (s *visitorService) Get(ctx context.Context, id string) (models.Visitor, error) {
	v, err := s.visitorRepository.GetVisitor(ctx, id)
	if err != nil {
		return models.Visitor{}, fmt.Errorf("error getting visitor: %w", err)
	}
	return v, nil
}

func (s *visitorService) UpdateProfile(ctx context.Context, v models.Visitor) (models.Visitor, error) {
	log := logger.FromContext(ctx)

	v.CreatedAt = nil
	if err := s.validator.Validate(ctx, v); err != nil {
		return models.Visitor{}, fmt.Errorf("visitor is invalid: %w", err)
	}

	updated, err := s.visitorRepository.UpdateVisitor(ctx, v)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Visitor{}, ErrVisitorNotRegistered
	}
	if err != nil {
		log.Err(err).Str("func", "visitorService.UpdateProfile").Str("visitor_id", v.ID).Msg("visitor profile update ended with error")
		return models.Visitor{}, fmt.Errorf("error updating visitor: %w", err)
	}
	return updated, nil
}

func (s *visitorService) SetReminder(ctx context.Context, visitorID, eventID string) (models.Reminder, error) {
	if err := s.ensureVisitor(ctx, visitorID); err != nil {
		return models.Reminder{}, err
	}
	if _, err := s.contentRepository.Get(ctx, models.Events, eventID); err != nil {
		return models.Reminder{}, fmt.Errorf("error finding event %s: %w", eventID, err)
	}

	rem, err := s.visitorRepository.AddReminder(ctx, models.Reminder{VisitorID: visitorID, EventID: eventID})
	if err != nil {
		return models.Reminder{}, fmt.Errorf("error setting reminder: %w", err)
	}
	return rem, nil
}

func (s *visitorService) ClearReminder(ctx context.Context, visitorID, eventID string) error {
	if err := s.visitorRepository.RemoveReminder(ctx, visitorID, eventID); err != nil {
		return fmt.Errorf("error clearing reminder: %w", err)
	}
	return nil
}

func (s *visitorService) ListReminders(ctx context.Context, visitorID string) ([]models.Reminder, error) {
	reminders, err := s.visitorRepository.ListReminders(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("error listing reminders: %w", err)
	}
	return reminders, nil
}

func (s *visitorService) ensureVisitor(ctx context.Context, visitorID string) error {
	_, err := s.visitorRepository.GetVisitor(ctx, visitorID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrVisitorNotRegistered
	}
	if err != nil {
		return fmt.Errorf("error getting visitor: %w", err)
	}
	return nil
}
