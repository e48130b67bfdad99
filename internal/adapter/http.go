// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/utils"
	"github.com/MKhiriev/stateless-settings/models"
)

const (
	siteAPIPrefix    = "/api"
	networkAPIPrefix = "/network/api"
)

type httpSettingsAdapter struct {
	client *utils.HTTPClient
	prefix string

	token string

	logger *logger.Logger
}

// NewHTTPSettingsAdapter builds the HTTP implementation of [SettingsAPI].
// cfg.Network selects the network admin routes. The base URL defaults to
// the http scheme and must include a host.
func NewHTTPSettingsAdapter(cfg config.ClientConfig, logger *logger.Logger) (SettingsAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	prefix := siteAPIPrefix
	if cfg.Network {
		prefix = networkAPIPrefix
	}

	a := &httpSettingsAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		prefix: prefix,
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSettingsAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpSettingsAdapter) Token() string {
	return h.token
}

// Version GETs /api/version/. The version route lives in the site tree only.
func (h *httpSettingsAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(siteAPIPrefix + "/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpSettingsAdapter) Settings(ctx context.Context) (models.SettingsSnapshot, error) {
	var snap models.SettingsSnapshot
	if err := h.getJSON(ctx, "/settings/", nil, &snap); err != nil {
		return models.SettingsSnapshot{}, fmt.Errorf("settings request: %w", err)
	}
	return snap, nil
}

func (h *httpSettingsAdapter) Nonce(ctx context.Context) (models.Nonce, error) {
	var nonce models.Nonce
	if err := h.getJSON(ctx, "/settings/nonce", nil, &nonce); err != nil {
		return models.Nonce{}, fmt.Errorf("nonce request: %w", err)
	}
	return nonce, nil
}

// Save fetches a nonce and POSTs a JSON [models.SaveRequest] to
// /settings/. The server answers 403 with the unchanged configuration
// when it rejects the submission; that body is decoded and returned along
// with the error.
func (h *httpSettingsAdapter) Save(ctx context.Context, values map[string]string) (models.SaveResult, error) {
	nonce, err := h.Nonce(ctx)
	if err != nil {
		return models.SaveResult{}, err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SaveRequest{Action: nonce.Action, Nonce: nonce.Nonce, Values: values}).
		Post(h.prefix + "/settings/")
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("save request: %w", err)
	}

	mapped := mapHTTPError(resp)
	if mapped != nil && !errors.Is(mapped, ErrForbidden) {
		return models.SaveResult{}, mapped
	}

	var res models.SaveResult
	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return models.SaveResult{}, errors.Join(mapped, fmt.Errorf("decode save response: %w", err))
	}

	return res, mapped
}

func (h *httpSettingsAdapter) Reset(ctx context.Context, network bool) (models.SettingsSnapshot, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("network", strconv.FormatBool(network)).
		Post(h.prefix + "/settings/reset")
	if err != nil {
		return models.SettingsSnapshot{}, fmt.Errorf("reset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SettingsSnapshot{}, err
	}

	var snap models.SettingsSnapshot
	if err = json.Unmarshal(resp.Body(), &snap); err != nil {
		return models.SettingsSnapshot{}, fmt.Errorf("decode reset response: %w", err)
	}
	return snap, nil
}

func (h *httpSettingsAdapter) RootDir(ctx context.Context, template string) (string, error) {
	var res struct {
		RootDir string `json:"root_dir"`
	}

	var query map[string]string
	if template != "" {
		query = map[string]string{"template": template}
	}

	if err := h.getJSON(ctx, "/settings/root-dir", query, &res); err != nil {
		return "", fmt.Errorf("root dir request: %w", err)
	}
	return res.RootDir, nil
}

func (h *httpSettingsAdapter) Wildcards(ctx context.Context) (models.Wildcards, error) {
	var wildcards models.Wildcards
	if err := h.getJSON(ctx, "/settings/wildcards", nil, &wildcards); err != nil {
		return nil, fmt.Errorf("wildcards request: %w", err)
	}
	return wildcards, nil
}

func (h *httpSettingsAdapter) Notices(ctx context.Context) ([]models.Notice, error) {
	var notices []models.Notice
	if err := h.getJSON(ctx, "/notices", nil, &notices); err != nil {
		return nil, fmt.Errorf("notices request: %w", err)
	}
	return notices, nil
}

// getJSON GETs path under the context prefix and decodes the body into out.
func (h *httpSettingsAdapter) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(query).
		Get(h.prefix + path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		h.logger.Err(err).Str("func", "httpSettingsAdapter.getJSON").Str("path", path).Msg("undecodable response")
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpSettingsAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
