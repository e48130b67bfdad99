// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/stateless-settings/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(requireCapability(models.CapabilityManageOptions))
			h.settingsRoutes(r)
		})
	})

	router.Route("/network/api", func(r chi.Router) {
		r.Use(withNetworkAdmin)
		r.Use(h.auth)
		r.Use(requireCapability(models.CapabilityManageNetwork))
		h.settingsRoutes(r)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// settingsRoutes registers the endpoints shared by both admin contexts.
func (h *Handler) settingsRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.getSettings)
		r.Post("/", h.saveSettings)
		r.Post("/reset", h.resetSettings)
		r.Get("/nonce", h.getNonce)
		r.Get("/wildcards", h.getWildcards)
		r.Get("/root-dir", h.getRootDir)
	})

	r.Get("/admin/pages", h.getPages)
	r.Get("/admin/pages/{slug}", h.getPageView)
	r.Get("/notices", h.getNotices)
}
