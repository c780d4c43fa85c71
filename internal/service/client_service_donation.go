// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
)

type clientDonationService struct {
	checkout  Checkout
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientDonationService(checkout Checkout, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientDonationService {
	return &clientDonationService{
		checkout:  checkout,
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
}

func (c *clientDonationService) Donate(ctx context.Context, req models.CheckoutRequest) (*models.Donation, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	res, err := c.checkout.Pay(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDonationNotConfirmed, err)
	}
	if res.Status != models.CheckoutSuccessful {
		c.logger.Info().Str("status", string(res.Status)).Str("purpose", req.Purpose).Msg("checkout did not succeed")
		return nil, fmt.Errorf("%w: checkout %s", ErrDonationNotConfirmed, res.Status)
	}

	donation, err := c.adapter.ConfirmDonation(ctx, models.DonationCallback{
		CheckoutRequest: req,
		Status:          res.Status,
		Reference:       res.Reference,
	})
	if err != nil {
		c.logger.Err(err).Str("func", "clientDonationService.Donate").Str("reference", res.Reference).Msg("recording paid donation failed")
		return nil, fmt.Errorf("record donation %s: %w", res.Reference, err)
	}
	return donation, nil
}

// SandboxCheckout is a Checkout that settles every payment at once without
// charging anything. Requests whose purpose is in Decline are declined.
type SandboxCheckout struct {
	Decline map[string]models.CheckoutStatus

	uuid *utils.UUIDGenerator
}

func NewSandboxCheckout() *SandboxCheckout {
	return &SandboxCheckout{uuid: utils.NewUUIDGenerator()}
}

func (s *SandboxCheckout) Pay(ctx context.Context, req models.CheckoutRequest) (models.CheckoutResult, error) {
	if err := ctx.Err(); err != nil {
		return models.CheckoutResult{}, err
	}
	if status, ok := s.Decline[req.Purpose]; ok {
		return models.CheckoutResult{Status: status}, nil
	}
	return models.CheckoutResult{Status: models.CheckoutSuccessful, Reference: "sandbox-" + s.uuid.Generate()}, nil
}
