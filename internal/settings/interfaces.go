// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/stateless-settings/models"
)

// OptionStore is the durable key/value option table with a site and a
// network scope. Get reports found=false for a missing option.
type OptionStore interface {
	Get(ctx context.Context, scope models.Scope, name string) (value string, found bool, err error)
	Update(ctx context.Context, scope models.Scope, name, value string) error
	Delete(ctx context.Context, scope models.Scope, name string) error
}

// TransientFlusher drops cached plugin state after a save.
type TransientFlusher interface {
	FlushTransients(ctx context.Context) error
}

// NonceVerifier checks the anti-forgery token of a form submission.
type NonceVerifier interface {
	Verify(ctx context.Context, nonce, action string) bool
}

// Constants is the table of defined constants.
type Constants interface {
	Lookup(name string) (any, bool)
}

// Environment is the process environment.
type Environment interface {
	LookupEnv(name string) (string, bool)
}

// NoticeCollector receives admin notices.
type NoticeCollector interface {
	Add(n models.Notice, level models.NoticeLevel)
}

// Host is the installation context. *host.Bootstrap implements it.
type Host interface {
	Name() string
	IsMultisite() bool
	IsNetworkAdmin(ctx context.Context) bool
	CurrentUserCan(ctx context.Context, capability string) bool
	Path(rel string) string
	SettingsPageURL(ctx context.Context, query string) string
	Site() models.Site
	Paths() models.Paths
}

// SaveFilter may rewrite the submitted values before they are stored.
type SaveFilter func(values map[string]string) map[string]string

// WildcardFilter may rewrite the wildcard table before substitution.
type WildcardFilter func(wildcards models.Wildcards) models.Wildcards
