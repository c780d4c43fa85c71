// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/models"
)

type clientReminderService struct {
	identity ClientIdentityService
	adapter  adapter.ServerAdapter
}

func NewClientReminderService(identity ClientIdentityService, serverAdapter adapter.ServerAdapter) ClientReminderService {
	return &clientReminderService{
		identity: identity,
		adapter:  serverAdapter,
	}
}

// Set goes through Visitor so that a visitor whose registration failed
// earlier is registered before the reminder is stored.
func (c *clientReminderService) Set(ctx context.Context, eventID string) error {
	v, err := c.identity.Visitor(ctx)
	if err != nil {
		return err
	}

	if _, err = c.adapter.SetReminder(ctx, v.ID, eventID); err != nil {
		return fmt.Errorf("set reminder for %s: %w", eventID, err)
	}
	return nil
}

func (c *clientReminderService) Clear(ctx context.Context, eventID string) error {
	id, err := c.identity.VisitorID(ctx)
	if err != nil {
		return err
	}

	if err = c.adapter.ClearReminder(ctx, id, eventID); err != nil {
		return fmt.Errorf("clear reminder for %s: %w", eventID, err)
	}
	return nil
}

func (c *clientReminderService) List(ctx context.Context) ([]models.Reminder, error) {
	id, err := c.identity.VisitorID(ctx)
	if err != nil {
		return nil, err
	}

	reminders, err := c.adapter.ListReminders(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}
