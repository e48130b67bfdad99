// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/models"
)

// Admin page slugs, also used to build sm page URLs.
const (
	SetupPageSlug    = "stateless-setup"
	SettingsPageSlug = "stateless-settings"
)

// Dependencies groups the collaborators every Settings needs.
type Dependencies struct {
	Host      Host
	Store     OptionStore
	Flusher   TransientFlusher
	Nonces    NonceVerifier
	Constants Constants
	Env       Environment
	Notices   NoticeCollector
}

// Settings is the effective configuration of one request.
type Settings struct {
	Dependencies

	logger         *logger.Logger
	saveFilter     SaveFilter
	wildcardFilter WildcardFilter
	now            func() time.Time
	readFile       func(name string) ([]byte, error)

	general     []models.Definition
	networkOnly []models.Definition

	data map[string]any
}

// Option customizes a Settings built by New.
type Option func(*Settings)

// WithSaveFilter installs the hook applied to submitted values.
func WithSaveFilter(f SaveFilter) Option {
	return func(s *Settings) { s.saveFilter = f }
}

// WithWildcardFilter installs the hook applied to the wildcard table.
func WithWildcardFilter(f WildcardFilter) Option {
	return func(s *Settings) { s.wildcardFilter = f }
}

// WithClock replaces time.Now for the date wildcards.
func WithClock(now func() time.Time) Option {
	return func(s *Settings) { s.now = now }
}

// WithFileReader replaces os.ReadFile for the key-file probe.
func WithFileReader(read func(name string) ([]byte, error)) Option {
	return func(s *Settings) { s.readFile = read }
}

// WithDefinitions replaces the definition tables.
func WithDefinitions(general, networkOnly []models.Definition) Option {
	return func(s *Settings) {
		s.general = general
		s.networkOnly = networkOnly
	}
}

// New returns an empty Settings. Call Load before reading values.
func New(deps Dependencies, log *logger.Logger, opts ...Option) *Settings {
	s := &Settings{
		Dependencies: deps,
		logger:       log,
		now:          time.Now,
		readFile:     os.ReadFile,
		general:      GeneralDefinitions(),
		networkOnly:  NetworkOnlyDefinitions(),
		data:         map[string]any{"sm": map[string]any{}},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load resolves the configuration and computes the admin page URLs.
func (s *Settings) Load(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return err
	}

	s.Set("page_url.stateless_setup", s.Host.SettingsPageURL(ctx, "?page="+SetupPageSlug))
	s.Set("page_url.stateless_settings", s.Host.SettingsPageURL(ctx, "?page="+SettingsPageSlug))

	return nil
}

// Get returns the value under a dotted key such as "sm.mode" or
// "sm.readonly". Missing keys yield nil.
func (s *Settings) Get(key string) any {
	var current any = s.data
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		if current, ok = node[part]; !ok {
			return nil
		}
	}
	return current
}

// Set stores value under a dotted key, creating intermediate maps and
// replacing non-map values on the way.
func (s *Settings) Set(key string, value any) {
	parts := strings.Split(key, ".")
	node := s.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[part] = next
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
}

// Value returns sm.<name> as a string. Non-string values are empty.
func (s *Settings) Value(name string) string {
	value, _ := s.Get("sm." + name).(string)
	return value
}

// ReadOnly returns the source that locked sm.<name>, if any.
func (s *Settings) ReadOnly(name string) (models.Source, bool) {
	source, ok := s.Get("sm.readonly." + name).(models.Source)
	return source, ok
}

// Snapshot returns a deep copy of the effective map, safe to encode.
func (s *Settings) Snapshot() map[string]any {
	return deepCopy(s.data)
}

func deepCopy(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		if nested, ok := value.(map[string]any); ok {
			out[key] = deepCopy(nested)
			continue
		}
		out[key] = value
	}
	return out
}

func cloneValues(values map[string]string) map[string]string {
	if values == nil {
		return map[string]string{}
	}
	return maps.Clone(values)
}
