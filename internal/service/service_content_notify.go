// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-parish/models"
)

// ContentNotifyService publishes a change hint after every successful
// mutation of the wrapped service.
type ContentNotifyService struct {
	inner    ContentService
	notifier ChangeNotifier
}

func NewContentNotifyService(notifier ChangeNotifier) ContentServiceWrapper {
	return &ContentNotifyService{notifier: notifier}
}

func (n *ContentNotifyService) List(ctx context.Context, c models.Collection) ([]models.Record, error) {
	return n.inner.List(ctx, c)
}

func (n *ContentNotifyService) Get(ctx context.Context, c models.Collection, id string) (models.Record, error) {
	return n.inner.Get(ctx, c, id)
}

func (n *ContentNotifyService) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	created, err := n.inner.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	n.notifier.Publish(models.ChangeEvent{Collection: created.Collection(), Op: models.OpCreate, ID: created.RecordID()})
	return created, nil
}

func (n *ContentNotifyService) CreateWithID(ctx context.Context, rec models.Record) (models.Record, error) {
	created, err := n.inner.CreateWithID(ctx, rec)
	if err != nil {
		return nil, err
	}
	n.notifier.Publish(models.ChangeEvent{Collection: created.Collection(), Op: models.OpCreate, ID: created.RecordID()})
	return created, nil
}

func (n *ContentNotifyService) Update(ctx context.Context, rec models.Record) (models.Record, error) {
	updated, err := n.inner.Update(ctx, rec)
	if err != nil {
		return nil, err
	}
	n.notifier.Publish(models.ChangeEvent{Collection: updated.Collection(), Op: models.OpUpdate, ID: updated.RecordID()})
	return updated, nil
}

func (n *ContentNotifyService) Delete(ctx context.Context, c models.Collection, id string) error {
	if err := n.inner.Delete(ctx, c, id); err != nil {
		return err
	}
	n.notifier.Publish(models.ChangeEvent{Collection: c, Op: models.OpDelete, ID: id})
	return nil
}

func (n *ContentNotifyService) Wrap(inner ContentService) ContentService {
	n.inner = inner
	return n
}
