// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the settings API.
//
// [SettingsAPI] hides the transport from smctl. The HTTP implementation
// ([NewHTTPSettingsAdapter]) maps non-2xx responses onto the sentinel errors
// of errors.go, so callers can use [errors.Is] (e.g. [ErrForbidden] for 403,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/stateless-settings/models"
)

// SettingsAPI talks to one admin context of the settings API, the site or
// the network one.
type SettingsAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	// Version returns the server version. Needs no token.
	Version(ctx context.Context) (string, error)

	// Settings returns the resolved settings and the notices raised while
	// resolving them.
	Settings(ctx context.Context) (models.SettingsSnapshot, error)

	// Nonce fetches a fresh settings form nonce for the token's user.
	Nonce(ctx context.Context) (models.Nonce, error)

	// Save submits values under a freshly fetched nonce. A rejected
	// submission returns the unchanged configuration with Saved false and
	// a wrapped [ErrForbidden].
	Save(ctx context.Context, values map[string]string) (models.SaveResult, error)

	// Reset wipes stored settings. network selects the network scope.
	Reset(ctx context.Context, network bool) (models.SettingsSnapshot, error)

	// RootDir expands template, or the stored root_dir when template is "".
	RootDir(ctx context.Context, template string) (string, error)

	// Wildcards returns the wildcard table of the current context.
	Wildcards(ctx context.Context) (models.Wildcards, error)

	// Notices returns the notices raised while resolving settings.
	Notices(ctx context.Context) ([]models.Notice, error)
}
