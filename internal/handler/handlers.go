// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/handler/http"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/service"
)

// Handlers groups the transport handlers of the settings service.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handler of every transport with a configured
// address.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
