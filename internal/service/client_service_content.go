// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/models"
)

type clientContentService struct {
	adapter adapter.ServerAdapter
	session *Session
	syncers []Syncer
	logger  *logger.Logger
}

// NewClientContentService returns a ClientContentService whose
// ConvergeRefresh mutations refresh every syncer. Inactive syncers are
// skipped.
func NewClientContentService(serverAdapter adapter.ServerAdapter, session *Session, logger *logger.Logger, syncers ...Syncer) ClientContentService {
	return &clientContentService{
		adapter: serverAdapter,
		session: session,
		syncers: syncers,
		logger:  logger,
	}
}

func (c *clientContentService) Create(ctx context.Context, rec models.Record, mode Convergence) (models.Record, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}

	created, err := c.adapter.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", rec.Collection(), err)
	}

	c.converge(ctx, mode)
	return created, nil
}

func (c *clientContentService) Update(ctx context.Context, rec models.Record, mode Convergence) (models.Record, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}
	if rec.RecordID() == "" {
		return nil, ErrInvalidDataProvided
	}

	updated, err := c.adapter.Update(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", rec.Collection(), rec.RecordID(), err)
	}

	c.converge(ctx, mode)
	return updated, nil
}

// Delete treats a record that is already gone as deleted.
func (c *clientContentService) Delete(ctx context.Context, col models.Collection, id string, mode Convergence) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}

	err := c.adapter.Delete(ctx, col, id)
	if errors.Is(err, adapter.ErrNotFound) {
		logger.FromContext(ctx).Debug().Str("collection", string(col)).Str("id", id).Msg("record was already deleted")
		err = nil
	}
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", col, id, err)
	}

	c.converge(ctx, mode)
	return nil
}

func (c *clientContentService) Subscribe(ctx context.Context, email, name string) (*models.Subscriber, error) {
	sub, err := c.adapter.Subscribe(ctx, models.Subscriber{Email: email, Name: name})
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	return sub, nil
}

func (c *clientContentService) UploadURL(ctx context.Context, fileName, contentType string) (models.UploadURL, error) {
	if err := c.requireAdmin(); err != nil {
		return models.UploadURL{}, err
	}

	u, err := c.adapter.RequestUploadURL(ctx, models.UploadURLRequest{FileName: fileName, ContentType: contentType})
	if err != nil {
		return models.UploadURL{}, fmt.Errorf("request upload url: %w", err)
	}
	return u, nil
}

func (c *clientContentService) requireAdmin() error {
	if c.session != nil && !c.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}

// converge runs after a successful mutation. A failed refresh is logged; the
// mutation itself already succeeded.
func (c *clientContentService) converge(ctx context.Context, mode Convergence) {
	if mode != ConvergeRefresh {
		return
	}

	for _, s := range c.syncers {
		err := s.Refresh(ctx)
		if err != nil && !errors.Is(err, ErrSyncInactive) {
			c.logger.Warn().Err(err).Str("func", "clientContentService.converge").Msg("refresh after mutation failed")
		}
	}
}
