// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/settings"
	"github.com/MKhiriev/stateless-settings/models"
)

type Services struct {
	AuthService     AuthService
	AppInfoService  AppInfoService
	NonceService    NonceService
	SettingsService SettingsService
}

// Host gathers what the services need from the installation.
type Host struct {
	Site      settings.Host
	Constants settings.Constants
	Env       settings.Environment
}

func NewServices(options OptionRepository, host Host, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger, opts ...settings.Option) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	nonces, err := NewNonceService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfo,
		NonceService:    nonces,
		SettingsService: NewSettingsService(host.Site, options, nonces, host.Constants, host.Env, logger, opts...),
	}, nil
}
