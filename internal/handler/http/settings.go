// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/stateless-settings/internal/app"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/settings"
	"github.com/MKhiriev/stateless-settings/internal/utils"
	"github.com/MKhiriev/stateless-settings/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	snap, err := h.services.SettingsService.Snapshot(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSettings").Msg("error resolving settings")
		writeError(w, err)
		return
	}
	h.writeJSON(w, r, snap, http.StatusOK)
}

// saveSettings answers 403 with the unchanged configuration when the
// submission is rejected.
func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := parseSaveRequest(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveSettings").Msg("invalid form was passed")
		writeError(w, err)
		return
	}

	// A forged submission is answered like any rejected save, so field
	// validation only applies once action and nonce check out.
	if h.isGenuineSubmission(r, req) {
		if err = h.validator.Validate(r.Context(), req); err != nil {
			log.Err(err).Str("func", "*Handler.saveSettings").Msg("settings submission failed validation")
			writeError(w, fmt.Errorf("%w: %w", ErrInvalidForm, err))
			return
		}
	}

	res, err := h.services.SettingsService.Save(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveSettings").Msg("error saving settings")
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if !res.Saved {
		status = http.StatusForbidden
	}
	h.writeJSON(w, r, res, status)
}

func (h *Handler) isGenuineSubmission(r *http.Request, req models.SaveRequest) bool {
	return req.Action == settings.SaveAction &&
		h.services.NonceService.Verify(r.Context(), req.Nonce, settings.NonceAction)
}

func (h *Handler) resetSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	network := false
	if raw := r.URL.Query().Get("network"); raw != "" {
		var err error
		if network, err = strconv.ParseBool(raw); err != nil {
			log.Err(err).Str("func", "*Handler.resetSettings").Msg("invalid network flag")
			http.Error(w, app.MsgInvalidNetworkFlag, http.StatusBadRequest)
			return
		}
	}

	snap, err := h.services.SettingsService.Reset(r.Context(), network)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resetSettings").Bool("network", network).Msg("error resetting settings")
		writeError(w, err)
		return
	}
	h.writeJSON(w, r, snap, http.StatusOK)
}

func (h *Handler) getNonce(w http.ResponseWriter, r *http.Request) {
	nonce := h.services.NonceService.Create(r.Context(), settings.NonceAction)
	h.writeJSON(w, r, models.Nonce{Action: settings.NonceAction, Nonce: nonce}, http.StatusOK)
}

func (h *Handler) getWildcards(w http.ResponseWriter, r *http.Request) {
	wildcards, err := h.services.SettingsService.Wildcards(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getWildcards").Send()
		writeError(w, err)
		return
	}
	h.writeJSON(w, r, wildcards, http.StatusOK)
}

func (h *Handler) getRootDir(w http.ResponseWriter, r *http.Request) {
	template := r.URL.Query().Get("template")

	rootDir, err := h.services.SettingsService.RootDir(r.Context(), template)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getRootDir").Send()
		writeError(w, err)
		return
	}
	h.writeJSON(w, r, map[string]string{"template": template, "root_dir": rootDir}, http.StatusOK)
}

func (h *Handler) getPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.services.SettingsService.Pages(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getPages").Send()
		writeError(w, err)
		return
	}
	h.writeJSON(w, r, pages, http.StatusOK)
}

func (h *Handler) getPageView(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	step := r.URL.Query().Get("step")

	view, err := h.services.SettingsService.View(r.Context(), slug, step)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getPageView").Str("slug", slug).Send()
		writeError(w, err)
		return
	}
	h.writeJSON(w, r, view, http.StatusOK)
}

func (h *Handler) getNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.services.SettingsService.Notices(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getNotices").Send()
		writeError(w, err)
		return
	}
	h.writeJSON(w, r, notices, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}
