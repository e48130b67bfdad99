// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/utils"
	"github.com/MKhiriev/stateless-settings/models"
)

func newTestBootstrap(multisite bool) *Bootstrap {
	return NewBootstrap(config.Site{
		Name:            "WP-Stateless",
		Domain:          "stateless-media",
		Multisite:       multisite,
		ID:              3,
		URL:             "https://example.com/site-3",
		AdminURL:        "https://example.com/site-3/wp-admin/",
		NetworkAdminURL: "https://example.com/wp-admin/network/",
	}, config.Paths{
		Root:    "/var/www",
		Content: "/var/www/wp-content",
		Uploads: "/var/www/wp-content/uploads",
		Plugin:  "/var/www/wp-content/plugins/wp-stateless",
	})
}

func TestNewBootstrap_Fields(t *testing.T) {
	b := newTestBootstrap(true)

	assert.Equal(t, "WP-Stateless", b.Name())
	assert.Equal(t, "stateless-media", b.Domain())
	assert.True(t, b.IsMultisite())
	assert.Equal(t, models.Site{ID: 3, URL: "https://example.com/site-3"}, b.Site())
	assert.Equal(t, "/var/www/wp-content/uploads", b.Paths().Uploads)
}

func TestBootstrap_IsNetworkAdmin(t *testing.T) {
	flagged := utils.WithNetworkAdmin(context.Background())

	assert.True(t, newTestBootstrap(true).IsNetworkAdmin(flagged))
	assert.False(t, newTestBootstrap(true).IsNetworkAdmin(context.Background()))
	assert.False(t, newTestBootstrap(false).IsNetworkAdmin(flagged), "single site has no network admin")
}

func TestBootstrap_CurrentUserCan(t *testing.T) {
	b := newTestBootstrap(true)
	ctx := utils.WithUser(context.Background(), models.User{
		UserID:       1,
		Capabilities: []string{models.CapabilityManageOptions},
	})

	assert.True(t, b.CurrentUserCan(ctx, models.CapabilityManageOptions))
	assert.False(t, b.CurrentUserCan(ctx, models.CapabilityManageNetwork))
	assert.False(t, b.CurrentUserCan(context.Background(), models.CapabilityManageOptions))
}

func TestBootstrap_Path(t *testing.T) {
	b := newTestBootstrap(false)

	assert.Equal(t, filepath.Join("/var/www/wp-content/plugins/wp-stateless", "key.json"), b.Path("key.json"))
	assert.Equal(t, "/var/www/wp-content/plugins/wp-stateless/static/views/settings_interface.php",
		b.Path("/static/views/settings_interface.php"))
}

func TestBootstrap_SettingsPageURL(t *testing.T) {
	tests := []struct {
		name      string
		multisite bool
		network   bool
		want      string
	}{
		{"single site", false, false, "https://example.com/site-3/wp-admin/upload.php?page=stateless-settings"},
		{"single site ignores network flag", false, true, "https://example.com/site-3/wp-admin/upload.php?page=stateless-settings"},
		{"multisite site admin", true, false, "https://example.com/site-3/wp-admin/upload.php?page=stateless-settings"},
		{"multisite network admin", true, true, "https://example.com/wp-admin/network/settings.php?page=stateless-settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.network {
				ctx = utils.WithNetworkAdmin(ctx)
			}

			assert.Equal(t, tt.want, newTestBootstrap(tt.multisite).SettingsPageURL(ctx, "?page=stateless-settings"))
		})
	}
}

func TestBootstrap_SettingsPageURL_NoBase(t *testing.T) {
	b := NewBootstrap(config.Site{}, config.Paths{})

	assert.Equal(t, "upload.php?page=stateless-setup", b.SettingsPageURL(context.Background(), "?page=stateless-setup"))
}
