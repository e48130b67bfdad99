// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/utils"
	"github.com/MKhiriev/stateless-settings/models"
)

// Admin menu parents used for the settings pages.
const (
	MediaMenu           = "upload.php"
	NetworkSettingsMenu = "settings.php"
)

// Bootstrap is the host context of one installation.
type Bootstrap struct {
	name            string
	domain          string
	multisite       bool
	site            models.Site
	paths           models.Paths
	adminURL        string
	networkAdminURL string
}

// NewBootstrap builds the host context from the site and path configuration.
func NewBootstrap(site config.Site, paths config.Paths) *Bootstrap {
	return &Bootstrap{
		name:      site.Name,
		domain:    site.Domain,
		multisite: site.Multisite,
		site:      models.Site{ID: site.ID, URL: site.URL},
		paths: models.Paths{
			Root:    paths.Root,
			Content: paths.Content,
			Uploads: paths.Uploads,
			Plugin:  paths.Plugin,
		},
		adminURL:        site.AdminURL,
		networkAdminURL: site.NetworkAdminURL,
	}
}

// Name is the plugin name used in notice titles.
func (b *Bootstrap) Name() string {
	return b.name
}

// Domain is the text domain of translatable strings.
func (b *Bootstrap) Domain() string {
	return b.domain
}

func (b *Bootstrap) IsMultisite() bool {
	return b.multisite
}

// IsNetworkAdmin reports whether the request behind ctx is served from the
// network admin. Always false on single-site installs.
func (b *Bootstrap) IsNetworkAdmin(ctx context.Context) bool {
	return b.multisite && utils.IsNetworkAdmin(ctx)
}

// CurrentUserCan reports whether the authenticated user holds capability.
// Anonymous requests hold nothing.
func (b *Bootstrap) CurrentUserCan(ctx context.Context, capability string) bool {
	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		return false
	}
	return user.Can(capability)
}

// Path joins rel onto the plugin root.
func (b *Bootstrap) Path(rel string) string {
	return filepath.Join(b.paths.Plugin, rel)
}

// SettingsPageURL returns the admin URL of a settings page. query is
// appended as given, e.g. "?page=stateless-settings".
//
// In the network admin the page lives under the network settings menu,
// everywhere else under the media menu.
func (b *Bootstrap) SettingsPageURL(ctx context.Context, query string) string {
	if b.IsNetworkAdmin(ctx) {
		return joinAdminURL(b.networkAdminURL, NetworkSettingsMenu) + query
	}
	return joinAdminURL(b.adminURL, MediaMenu) + query
}

func (b *Bootstrap) Site() models.Site {
	return b.site
}

func (b *Bootstrap) Paths() models.Paths {
	return b.paths
}

func joinAdminURL(base, page string) string {
	if base == "" {
		return page
	}
	return strings.TrimRight(base, "/") + "/" + page
}
