// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/store"
	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
)

type donationService struct {
	content   ContentService
	validator validators.Validator

	logger *logger.Logger
}

func NewDonationService(content ContentService, validator validators.Validator, logger *logger.Logger) DonationService {
	return &donationService{
		content:   content,
		validator: validator,
		logger:    logger,
	}
}

// Confirm stores the donation of a successful callback. Providers retry
// webhooks, so a callback whose reference is already stored returns the
// existing donation.
func (s *donationService) Confirm(ctx context.Context, cb models.DonationCallback) (*models.Donation, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, cb); err != nil {
		return nil, fmt.Errorf("donation callback is invalid: %w", err)
	}

	if cb.Status != models.CheckoutSuccessful {
		log.Info().Str("reference", cb.Reference).Str("status", string(cb.Status)).Msg("ignoring unsuccessful checkout")
		return nil, ErrDonationNotConfirmed
	}

	id := donationID(cb.Reference)
	if existing, err := s.donation(ctx, id); err == nil {
		return existing, nil
	} else if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, err
	}

	created, err := s.content.CreateWithID(ctx, &models.Donation{
		Base:      models.Base{ID: id},
		Amount:    cb.Amount,
		Currency:  cb.Currency,
		Purpose:   cb.Purpose,
		DonorName: cb.DonorName,
		Reference: cb.Reference,
		Status:    models.DonationConfirmed,
	})
	if errors.Is(err, store.ErrRecordAlreadyExists) {
		// a concurrent retry of the same callback won the insert
		return s.donation(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("error recording donation: %w", err)
	}

	log.Info().Str("reference", cb.Reference).Int64("amount", cb.Amount).Str("currency", cb.Currency).Msg("donation recorded")
	return created.(*models.Donation), nil
}

func (s *donationService) donation(ctx context.Context, id string) (*models.Donation, error) {
	rec, err := s.content.Get(ctx, models.Donations, id)
	if err != nil {
		return nil, err
	}
	return rec.(*models.Donation), nil
}

// donationNamespace scopes the name-based IDs of donation records.
var donationNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:go-parish:donations"))

// donationID maps a checkout reference to a stable record ID, so the
// store's primary key rejects a second record for the same payment.
func donationID(reference string) string {
	return uuid.NewSHA1(donationNamespace, []byte(reference)).String()
}
