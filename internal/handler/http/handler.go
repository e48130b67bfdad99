// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/service"
	"github.com/MKhiriev/stateless-settings/internal/utils"
	"github.com/MKhiriev/stateless-settings/internal/validators"
)

type Handler struct {
	services  *service.Services
	traceIDs  *utils.UUIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		traceIDs:  utils.NewUUIDGenerator(),
		validator: validators.NewSaveRequestValidator(),
		logger:    logger,
	}
}
