// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every Remote Store route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// websocket upgrades need the raw ResponseWriter, so the change feed
	// stays outside the gzip group
	router.Get("/api/changes", h.changes)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/admin/login", h.login)

		r.Post("/api/subscribe", h.subscribe)

		r.Post("/api/visitors", h.registerVisitor)
		r.Get("/api/visitors/{id}", h.getVisitor)
		r.Put("/api/visitors/{id}", h.updateVisitor)
		r.Get("/api/visitors/{id}/reminders", h.listReminders)
		r.Put("/api/visitors/{id}/reminders/{eventID}", h.setReminder)
		r.Delete("/api/visitors/{id}/reminders/{eventID}", h.clearReminder)

		r.Post("/api/sermons/{id}/views", h.trackView)

		r.With(h.callbackHashing).Post("/api/donations/confirm", h.confirmDonation)

		// public collections are open, private ones check the admin inside
		// the handler
		r.Group(func(r chi.Router) {
			r.Use(h.identify)
			r.Get("/api/content/{collection}", h.listContent)
			r.Get("/api/content/{collection}/{id}", h.getContent)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/api/content/{collection}", h.createContent)
			r.Put("/api/content/{collection}/{id}", h.updateContent)
			r.Delete("/api/content/{collection}/{id}", h.deleteContent)
			r.Post("/api/media/upload-url", h.uploadURL)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
