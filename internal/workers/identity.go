// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/service"
)

// IdentityWorker provisions the visitor identity once at startup so that the
// first reminder or view does not pay for registration. Failures are logged
// only; the identity service retries registration on its next use.
type IdentityWorker struct {
	identity service.ClientIdentityService
	logger   *logger.Logger
}

func NewIdentityWorker(identity service.ClientIdentityService, logger *logger.Logger) *IdentityWorker {
	return &IdentityWorker{identity: identity, logger: logger.WithComponent("identity")}
}

func (w *IdentityWorker) Run(ctx context.Context) error {
	visitor, err := w.identity.Visitor(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("visitor identity is not available")
		return nil
	}
	w.logger.Debug().Str("visitor_id", visitor.ID).Msg("visitor identity ready")
	return nil
}
