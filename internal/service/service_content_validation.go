// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
)

// ContentValidationService rejects invalid records before they reach the
// wrapped service.
type ContentValidationService struct {
	inner     ContentService
	validator validators.Validator
}

func NewContentValidationService(validator validators.Validator) ContentServiceWrapper {
	return &ContentValidationService{validator: validator}
}

func (v *ContentValidationService) List(ctx context.Context, c models.Collection) ([]models.Record, error) {
	return v.inner.List(ctx, c)
}

func (v *ContentValidationService) Get(ctx context.Context, c models.Collection, id string) (models.Record, error) {
	return v.inner.Get(ctx, c, id)
}

func (v *ContentValidationService) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	if err := v.validate(ctx, rec); err != nil {
		return nil, err
	}
	return v.inner.Create(ctx, rec)
}

func (v *ContentValidationService) CreateWithID(ctx context.Context, rec models.Record) (models.Record, error) {
	if err := v.validate(ctx, rec); err != nil {
		return nil, err
	}
	return v.inner.CreateWithID(ctx, rec)
}

func (v *ContentValidationService) Update(ctx context.Context, rec models.Record) (models.Record, error) {
	if err := v.validate(ctx, rec); err != nil {
		return nil, err
	}
	return v.inner.Update(ctx, rec)
}

func (v *ContentValidationService) Delete(ctx context.Context, c models.Collection, id string) error {
	return v.inner.Delete(ctx, c, id)
}

func (v *ContentValidationService) Wrap(inner ContentService) ContentService {
	v.inner = inner
	return v
}

func (v *ContentValidationService) validate(ctx context.Context, rec models.Record) error {
	if rec == nil {
		return ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, rec); err != nil {
		return fmt.Errorf("%s record is invalid: %w", rec.Collection(), err)
	}
	return nil
}
