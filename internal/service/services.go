// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/crypto"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/store"
	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
)

// Services groups the Remote Store services handed to the handlers.
type Services struct {
	ContentService    ContentService
	NewsletterService NewsletterService
	VisitorService    VisitorService
	ViewService       ViewService
	DonationService   DonationService
	AuthService       AuthService
	MediaService      MediaService
	AppInfoService    AppInfoService
	ChangeNotifier    ChangeNotifier
}

// NewServices wires the services over repos. Content mutations are validated
// first and announced on the change feed last.
func NewServices(ctx context.Context, repos *store.Repositories, cfg config.StructuredConfig, info models.AppInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewValidator()
	notifier := NewChangeNotifier()

	content := NewContentService(repos.ContentRepository, repos.ViewRepository, logger)
	content = NewContentNotifyService(notifier).Wrap(content)
	content = NewContentValidationService(validator).Wrap(content)

	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	media, err := NewMediaService(ctx, cfg.Storage.Media, validator, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ContentService:    content,
		NewsletterService: NewNewsletterService(content),
		VisitorService:    NewVisitorService(repos.VisitorRepository, repos.ContentRepository, validator, logger),
		ViewService:       NewViewService(repos.ViewRepository, repos.ContentRepository, validator, logger),
		DonationService:   NewDonationService(content, validator, logger),
		AuthService:       NewAuthService(cfg.App, crypto.NewPasswordHasher(), logger),
		MediaService:      media,
		AppInfoService:    appInfo,
		ChangeNotifier:    notifier,
	}, nil
}
