// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-parish/models"
)

// NewsletterService signs visitors up for the newsletter.
type NewsletterService interface {
	// Subscribe stores sub unless its address is already subscribed, in
	// which case the existing subscription is returned.
	Subscribe(ctx context.Context, sub models.Subscriber) (*models.Subscriber, error)
}

type newsletterService struct {
	content ContentService
}

// NewNewsletterService builds on content so that subscriptions go through the
// same validation and change notifications as admin edits.
func NewNewsletterService(content ContentService) NewsletterService {
	return &newsletterService{content: content}
}

func (s *newsletterService) Subscribe(ctx context.Context, sub models.Subscriber) (*models.Subscriber, error) {
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	sub.Name = strings.TrimSpace(sub.Name)

	existing, err := s.content.List(ctx, models.Subscribers)
	if err != nil {
		return nil, err
	}
	for _, rec := range existing {
		if known := rec.(*models.Subscriber); strings.EqualFold(known.Email, sub.Email) {
			return known, nil
		}
	}

	created, err := s.content.Create(ctx, &sub)
	if err != nil {
		return nil, fmt.Errorf("error subscribing: %w", err)
	}
	return created.(*models.Subscriber), nil
}
