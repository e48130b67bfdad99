// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/stateless-settings/internal/settings"
	"github.com/MKhiriev/stateless-settings/models"
)

type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// NonceService issues and checks the anti-forgery tokens of settings forms.
// Tokens are bound to the user in ctx and the action.
type NonceService interface {
	Create(ctx context.Context, action string) string
	Verify(ctx context.Context, nonce, action string) bool
}

// SettingsService resolves the configuration for each request and applies
// form submissions and resets.
type SettingsService interface {
	Snapshot(ctx context.Context) (models.SettingsSnapshot, error)
	Save(ctx context.Context, req models.SaveRequest) (models.SaveResult, error)
	Reset(ctx context.Context, network bool) (models.SettingsSnapshot, error)

	Wildcards(ctx context.Context) (models.Wildcards, error)
	RootDir(ctx context.Context, template string) (string, error)

	Pages(ctx context.Context) ([]models.Page, error)
	View(ctx context.Context, slug, step string) (models.PageView, error)
	Notices(ctx context.Context) ([]models.Notice, error)
}

// OptionRepository is the option store together with its transient cache.
type OptionRepository interface {
	settings.OptionStore
	settings.TransientFlusher
}
