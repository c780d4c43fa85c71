// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/store"
	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
)

// ClientServices bundles the services used by the terminal client.
//
// PublicSync follows the collections every visitor sees. AdminSync follows
// all collections and is only acquired while an admin is logged in.
type ClientServices struct {
	Session         *Session
	AuthService     ClientAuthService
	ContentService  ClientContentService
	IdentityService ClientIdentityService
	ViewTracker     ClientViewTracker
	ReminderService ClientReminderService
	DonationService ClientDonationService
	AppInfo         ClientAppInfoService
	PublicSync      ClientSyncService
	AdminSync       ClientSyncService
}

func NewClientServices(cache store.IdentityCache, serverAdapter adapter.ServerAdapter, checkout Checkout, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	session := NewSession()
	validator := validators.NewValidator()

	publicSync := NewClientSyncService(serverAdapter, models.PublicCollections(), cfg, logger)
	adminSync := NewClientSyncService(serverAdapter, models.AllCollections(), cfg, logger)

	identity := NewClientIdentityService(cache, serverAdapter, logger)

	return &ClientServices{
		Session:         session,
		AuthService:     NewClientAuthService(serverAdapter, session, logger),
		ContentService:  NewClientContentService(serverAdapter, session, logger, publicSync, adminSync),
		IdentityService: identity,
		ViewTracker:     NewClientViewTracker(cache, serverAdapter, logger),
		ReminderService: NewClientReminderService(identity, serverAdapter),
		DonationService: NewClientDonationService(checkout, serverAdapter, validator, logger),
		AppInfo:         serverAdapter,
		PublicSync:      publicSync,
		AdminSync:       adminSync,
	}
}
