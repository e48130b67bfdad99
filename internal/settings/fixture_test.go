// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/host"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/mock"
	"github.com/MKhiriev/stateless-settings/internal/notice"
	"github.com/MKhiriev/stateless-settings/internal/utils"
	"github.com/MKhiriev/stateless-settings/models"
)

// fixture wires a Settings to map-backed option tables.
type fixture struct {
	ctrl    *gomock.Controller
	store   *mock.MockOptionStore
	flusher *mock.MockTransientFlusher
	nonces  *mock.MockNonceVerifier
	notices *notice.Collector

	site    map[string]string
	network map[string]string

	constants host.MapConstants
	env       host.MapEnvironment
	multisite bool
	paths     config.Paths
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	return &fixture{
		ctrl:      ctrl,
		store:     mock.NewMockOptionStore(ctrl),
		flusher:   mock.NewMockTransientFlusher(ctrl),
		nonces:    mock.NewMockNonceVerifier(ctrl),
		notices:   notice.NewCollector(),
		site:      map[string]string{},
		network:   map[string]string{},
		constants: host.MapConstants{},
		env:       host.MapEnvironment{},
	}
}

func (f *fixture) table(scope models.Scope) map[string]string {
	if scope == models.ScopeNetwork {
		return f.network
	}
	return f.site
}

// backStore serves Get, Update and Delete from the fixture maps.
func (f *fixture) backStore() {
	f.store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, scope models.Scope, name string) (string, bool, error) {
			value, ok := f.table(scope)[name]
			return value, ok, nil
		}).AnyTimes()
	f.store.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, scope models.Scope, name, value string) error {
			f.table(scope)[name] = value
			return nil
		}).AnyTimes()
	f.store.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, scope models.Scope, name string) error {
			delete(f.table(scope), name)
			return nil
		}).AnyTimes()
}

func (f *fixture) bootstrap() *host.Bootstrap {
	return host.NewBootstrap(config.Site{
		Name:            "WP-Stateless",
		Domain:          "stateless-media",
		Multisite:       f.multisite,
		ID:              3,
		URL:             "https://example.com/site-3/",
		AdminURL:        "https://example.com/site-3/wp-admin/",
		NetworkAdminURL: "https://example.com/wp-admin/network/",
	}, f.paths)
}

func (f *fixture) settings(opts ...Option) *Settings {
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	return New(Dependencies{
		Host:      f.bootstrap(),
		Store:     f.store,
		Flusher:   f.flusher,
		Nonces:    f.nonces,
		Constants: f.constants,
		Env:       f.env,
		Notices:   f.notices,
	}, logger.Nop(), opts...)
}

func fixedClock() time.Time {
	return time.Date(2024, time.May, 17, 10, 0, 0, 0, time.UTC)
}

func networkAdmin() context.Context {
	return utils.WithNetworkAdmin(context.Background())
}

func admin(caps ...string) context.Context {
	return utils.WithUser(context.Background(), models.User{UserID: 1, Capabilities: caps})
}
