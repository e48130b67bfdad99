// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/stateless-settings/models"
)

func seedAll(f *fixture) {
	for _, def := range append(GeneralDefinitions(), NetworkOnlyDefinitions()...) {
		f.site[def.OptionName()] = "stored"
		f.network[def.OptionName()] = "stored"
	}
}

func TestReset_SiteOnly(t *testing.T) {
	f := newFixture(t)
	seedAll(f)
	f.backStore()
	s := f.settings()
	ctx := admin(models.CapabilityManageOptions)

	require.NoError(t, s.Reset(ctx, false))

	assert.Equal(t, map[string]string{
		UploadsOrganizeOption:     "stored",
		"sm_hide_settings_panel":  "stored",
		"sm_hide_setup_assistant": "stored",
	}, f.site)
	assert.Len(t, f.network, len(GeneralDefinitions())+len(NetworkOnlyDefinitions()))

	assert.Equal(t, "cdn", s.Value(Mode))
	assert.Equal(t, "jpg jpeg png gif pdf", s.Value(BodyRewriteTypes))
	assert.Equal(t, "stored", s.Value(OrganizeMedia), "the CMS option survives")
}

func TestReset_NetworkWithCapability(t *testing.T) {
	f := newFixture(t)
	f.multisite = true
	seedAll(f)
	f.backStore()
	s := f.settings()
	ctx := admin(models.CapabilityManageOptions, models.CapabilityManageNetwork)

	require.NoError(t, s.Reset(ctx, true))

	assert.Equal(t, map[string]string{UploadsOrganizeOption: "stored"}, f.site)
	assert.Equal(t, map[string]string{UploadsOrganizeOption: "stored"}, f.network)
	assert.Equal(t, "false", s.Value(HideSettingsPanel))
}

func TestReset_NetworkWithoutCapability(t *testing.T) {
	f := newFixture(t)
	f.multisite = true
	seedAll(f)
	f.backStore()
	s := f.settings()

	require.NoError(t, s.Reset(admin(models.CapabilityManageOptions), true))

	assert.Len(t, f.network, len(GeneralDefinitions())+len(NetworkOnlyDefinitions()))
	assert.NotContains(t, f.site, "sm_mode")
	assert.Contains(t, f.site, "sm_hide_settings_panel")
	assert.NotNil(t, s.Get("sm.mode"), "refresh ran")
}

func TestReset_RestoresDefaults(t *testing.T) {
	f := newFixture(t)
	f.site["sm_mode"] = "backup"
	f.site["sm_root_dir"] = "/custom/"
	f.backStore()
	s := f.settings()
	require.NoError(t, s.Refresh(admin()))
	require.Equal(t, "backup", s.Value(Mode))

	require.NoError(t, s.Reset(admin(), false))

	for _, def := range GeneralDefinitions() {
		if def.Name == OrganizeMedia {
			continue
		}
		assert.Equal(t, def.Default.Site, s.Get("sm."+def.Name), def.Name)
	}
}

func TestReset_DeleteErrorsAreJoined(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Delete(gomock.Any(), models.ScopeSite, "sm_mode").Return(errors.New("locked"))
	f.store.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, nil).AnyTimes()
	s := f.settings()

	err := s.Reset(admin(), false)

	assert.ErrorIs(t, err, ErrDeleteOption)
	assert.Equal(t, "cdn", s.Value(Mode), "remaining deletes and refresh still ran")
}
