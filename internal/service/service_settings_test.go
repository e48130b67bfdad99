// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/stateless-settings/internal/admin"
	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/host"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/mock"
	"github.com/MKhiriev/stateless-settings/internal/settings"
	"github.com/MKhiriev/stateless-settings/internal/utils"
	"github.com/MKhiriev/stateless-settings/models"
)

// optionTables backs a MockOptionRepository with two maps.
type optionTables struct {
	site, network map[string]string
	flushed       int
}

func (o *optionTables) table(scope models.Scope) map[string]string {
	if scope == models.ScopeNetwork {
		return o.network
	}
	return o.site
}

func newOptionRepository(t *testing.T) (*mock.MockOptionRepository, *optionTables) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOptionRepository(ctrl)
	tables := &optionTables{site: map[string]string{}, network: map[string]string{}}

	repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, scope models.Scope, name string) (string, bool, error) {
			v, ok := tables.table(scope)[name]
			return v, ok, nil
		}).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, scope models.Scope, name, value string) error {
			tables.table(scope)[name] = value
			return nil
		}).AnyTimes()
	repo.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, scope models.Scope, name string) error {
			delete(tables.table(scope), name)
			return nil
		}).AnyTimes()
	repo.EXPECT().FlushTransients(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			tables.flushed++
			return nil
		}).AnyTimes()

	return repo, tables
}

type acceptAll struct{}

func (acceptAll) Verify(context.Context, string, string) bool { return true }

func newTestSettingsService(options OptionRepository, constants host.MapConstants, multisite bool) SettingsService {
	h := host.NewBootstrap(config.Site{
		Name:      "WP-Stateless",
		Multisite: multisite,
		ID:        1,
		URL:       "https://example.com/",
		AdminURL:  "https://example.com/wp-admin/",
	}, config.Paths{Plugin: "/plugins/wp-stateless"})

	return NewSettingsService(h, options, acceptAll{}, constants, host.MapEnvironment{}, logger.Nop())
}

func sm(t *testing.T, snap models.SettingsSnapshot) map[string]any {
	t.Helper()
	values, ok := snap.Settings["sm"].(map[string]any)
	require.True(t, ok)
	return values
}

// ── Snapshot ──────────────────────────────────────────────────────────────────

func TestSettingsService_Snapshot(t *testing.T) {
	repo, tables := newOptionRepository(t)
	tables.site["sm_mode"] = "stateless"
	svc := newTestSettingsService(repo, host.MapConstants{}, false)

	snap, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	values := sm(t, snap)
	assert.Equal(t, "stateless", values["mode"])
	assert.Equal(t, "true", values["hashify_file_name"])
	assert.Equal(t, "https://example.com/wp-admin/upload.php?page=stateless-settings",
		snap.Settings["page_url"].(map[string]any)["stateless_settings"])
	assert.Empty(t, snap.Notices)
}

func TestSettingsService_NoticesArePerRequest(t *testing.T) {
	repo, _ := newOptionRepository(t)
	svc := newTestSettingsService(repo, host.MapConstants{"WP_STATELESS_MEDIA_HASH_FILENAME": true}, false)

	first, err := svc.Notices(context.Background())
	require.NoError(t, err)
	second, err := svc.Notices(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, "WP_STATELESS_MEDIA_CACHE_BUSTING", first[0].Key)
}

func TestSettingsService_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOptionRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, errors.New("db down")).AnyTimes()
	svc := newTestSettingsService(repo, host.MapConstants{}, false)

	_, err := svc.Snapshot(context.Background())

	assert.ErrorIs(t, err, ErrLoadSettings)
	assert.ErrorIs(t, err, settings.ErrReadOption)
}

// ── Save / Reset ──────────────────────────────────────────────────────────────

func TestSettingsService_Save(t *testing.T) {
	repo, tables := newOptionRepository(t)
	svc := newTestSettingsService(repo, host.MapConstants{}, false)

	res, err := svc.Save(context.Background(), models.SaveRequest{
		Action: settings.SaveAction,
		Nonce:  "anything",
		Values: map[string]string{"mode": " backup ", "bucket": "media"},
	})

	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.Equal(t, "backup", tables.site["sm_mode"])
	assert.Equal(t, 1, tables.flushed)
	assert.Equal(t, "media", sm(t, res.SettingsSnapshot)["bucket"])
}

func TestSettingsService_SaveRejected(t *testing.T) {
	repo, tables := newOptionRepository(t)
	svc := newTestSettingsService(repo, host.MapConstants{}, false)

	res, err := svc.Save(context.Background(), models.SaveRequest{Action: "other", Values: map[string]string{"mode": "backup"}})

	require.NoError(t, err)
	assert.False(t, res.Saved)
	assert.Empty(t, tables.site)
	assert.Equal(t, "cdn", sm(t, res.SettingsSnapshot)["mode"])
}

func TestSettingsService_Reset(t *testing.T) {
	repo, tables := newOptionRepository(t)
	tables.site["sm_mode"] = "stateless"
	tables.site["sm_bucket"] = "media"
	svc := newTestSettingsService(repo, host.MapConstants{}, false)

	snap, err := svc.Reset(context.Background(), false)

	require.NoError(t, err)
	assert.Empty(t, tables.site)
	assert.Equal(t, "cdn", sm(t, snap)["mode"])
}

// ── wildcards / admin pages ───────────────────────────────────────────────────

func TestSettingsService_RootDir(t *testing.T) {
	repo, tables := newOptionRepository(t)
	tables.site["sm_root_dir"] = "/sites/%site_id%/"
	svc := newTestSettingsService(repo, host.MapConstants{}, false)

	configured, err := svc.RootDir(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "sites/1", configured)

	explicit, err := svc.RootDir(context.Background(), "%site_url_host%/")
	require.NoError(t, err)
	assert.Equal(t, "examplecom", explicit)
}

func TestSettingsService_Wildcards(t *testing.T) {
	repo, _ := newOptionRepository(t)
	svc := newTestSettingsService(repo, host.MapConstants{}, false)

	wildcards, err := svc.Wildcards(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, wildcards)
}

func TestSettingsService_PagesAndView(t *testing.T) {
	repo, tables := newOptionRepository(t)
	tables.site["sm_key_json"] = "{}"
	svc := newTestSettingsService(repo, host.MapConstants{}, true)

	pages, err := svc.Pages(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, settings.SettingsPageSlug, pages[0].Slug)

	_, err = svc.View(context.Background(), settings.SetupPageSlug, "")
	assert.ErrorIs(t, err, admin.ErrPageNotFound)

	ctx := utils.WithNetworkAdmin(context.Background())
	view, err := svc.View(ctx, settings.SetupPageSlug, "google-login")
	require.NoError(t, err)
	assert.Equal(t, admin.SetupWizardTemplate, view.Template)
}
