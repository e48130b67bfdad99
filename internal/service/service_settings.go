// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stateless-settings/internal/admin"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/notice"
	"github.com/MKhiriev/stateless-settings/internal/settings"
	"github.com/MKhiriev/stateless-settings/models"
)

// settingsService builds a fresh settings.Settings for every call, so
// notices and network-admin state never leak between requests.
type settingsService struct {
	host      settings.Host
	options   OptionRepository
	nonces    settings.NonceVerifier
	constants settings.Constants
	env       settings.Environment
	opts      []settings.Option

	logger *logger.Logger
}

func NewSettingsService(
	host settings.Host,
	options OptionRepository,
	nonces settings.NonceVerifier,
	constants settings.Constants,
	env settings.Environment,
	logger *logger.Logger,
	opts ...settings.Option,
) SettingsService {
	return &settingsService{
		host:      host,
		options:   options,
		nonces:    nonces,
		constants: constants,
		env:       env,
		opts:      opts,
		logger:    logger,
	}
}

func (s *settingsService) load(ctx context.Context) (*settings.Settings, *notice.Collector, error) {
	notices := notice.NewCollector()
	st := settings.New(settings.Dependencies{
		Host:      s.host,
		Store:     s.options,
		Flusher:   s.options,
		Nonces:    s.nonces,
		Constants: s.constants,
		Env:       s.env,
		Notices:   notices,
	}, s.logger, s.opts...)

	if err := st.Load(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsService.load").Msg("error resolving settings")
		return nil, nil, fmt.Errorf("%w: %w", ErrLoadSettings, err)
	}
	return st, notices, nil
}

func snapshot(st *settings.Settings, notices *notice.Collector) models.SettingsSnapshot {
	return models.SettingsSnapshot{Settings: st.Snapshot(), Notices: notices.All()}
}

func (s *settingsService) Snapshot(ctx context.Context) (models.SettingsSnapshot, error) {
	st, notices, err := s.load(ctx)
	if err != nil {
		return models.SettingsSnapshot{}, err
	}
	return snapshot(st, notices), nil
}

// Save applies a form submission. A rejected submission is not an error:
// the result reports Saved=false with the unchanged configuration.
func (s *settingsService) Save(ctx context.Context, req models.SaveRequest) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	st, notices, err := s.load(ctx)
	if err != nil {
		return models.SaveResult{}, err
	}

	saved, err := st.Save(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*settingsService.Save").Int("fields", len(req.Values)).Msg("settings saved with errors")
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrSaveSettings, err)
	}
	if !saved {
		log.Warn().Str("func", "*settingsService.Save").Str("action", req.Action).Msg("settings submission rejected")
	}

	return models.SaveResult{Saved: saved, SettingsSnapshot: snapshot(st, notices)}, nil
}

func (s *settingsService) Reset(ctx context.Context, network bool) (models.SettingsSnapshot, error) {
	st, notices, err := s.load(ctx)
	if err != nil {
		return models.SettingsSnapshot{}, err
	}

	if err = st.Reset(ctx, network); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsService.Reset").Bool("network", network).Msg("reset finished with errors")
		return models.SettingsSnapshot{}, fmt.Errorf("%w: %w", ErrResetSettings, err)
	}

	return snapshot(st, notices), nil
}

func (s *settingsService) Wildcards(ctx context.Context) (models.Wildcards, error) {
	st, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Wildcards(), nil
}

// RootDir expands template, or the configured root directory when template
// is empty.
func (s *settingsService) RootDir(ctx context.Context, template string) (string, error) {
	st, _, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	if template == "" {
		template = st.Value("root_dir")
	}
	return st.RootDirWildcards(template), nil
}

func (s *settingsService) Pages(ctx context.Context) ([]models.Page, error) {
	st, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return admin.NewMenu(s.host, st).Pages(ctx), nil
}

func (s *settingsService) View(ctx context.Context, slug, step string) (models.PageView, error) {
	st, _, err := s.load(ctx)
	if err != nil {
		return models.PageView{}, err
	}
	return admin.NewMenu(s.host, st).View(ctx, slug, step)
}

func (s *settingsService) Notices(ctx context.Context) ([]models.Notice, error) {
	_, notices, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return notices.All(), nil
}
