// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admin decides which settings pages the admin menu shows and
// which view template renders them.
package admin

import (
	"context"
	"errors"
	"path"

	"github.com/MKhiriev/stateless-settings/internal/host"
	"github.com/MKhiriev/stateless-settings/internal/settings"
	"github.com/MKhiriev/stateless-settings/models"
)

// ErrPageNotFound is returned for a slug that is not registered in the
// current context.
var ErrPageNotFound = errors.New("admin page not found")

// View templates.
const (
	SettingsTemplate    = "settings_interface"
	SetupWizardTemplate = "setup_wizard_interface"
	SplashTemplate      = "stateless_splash_screen"
)

// Setup wizard steps that render the wizard instead of the splash screen.
const (
	StepGoogleLogin  = "google-login"
	StepSetupProject = "setup-project"
	StepFinish       = "finish"
)

// Settings is the resolved configuration the menu is gated on.
type Settings interface {
	Value(name string) string
	Wildcards() models.Wildcards
}

// Host tells site admin and network admin apart and resolves view paths.
type Host interface {
	IsNetworkAdmin(ctx context.Context) bool
	Path(rel string) string
}

// Menu registers the setup assistant and the settings panel.
type Menu struct {
	host     Host
	settings Settings
}

func NewMenu(h Host, s Settings) *Menu {
	return &Menu{host: h, settings: s}
}

// Pages returns the pages registered for the request.
//
// The network admin always gets both pages under the network settings
// menu. A site admin gets the setup assistant only while no key is
// configured and it is not hidden, and the settings panel unless hidden.
func (m *Menu) Pages(ctx context.Context) []models.Page {
	if m.host.IsNetworkAdmin(ctx) {
		return []models.Page{setupPage(host.NetworkSettingsMenu), settingsPage(host.NetworkSettingsMenu)}
	}

	var pages []models.Page
	if m.settings.Value(settings.HideSetupAssistant) != "true" && m.settings.Value(settings.KeyJSON) == "" {
		pages = append(pages, setupPage(host.MediaMenu))
	}
	if m.settings.Value(settings.HideSettingsPanel) != "true" {
		pages = append(pages, settingsPage(host.MediaMenu))
	}
	return pages
}

// View selects the template for a registered page. step only matters for
// the setup assistant.
func (m *Menu) View(ctx context.Context, slug, step string) (models.PageView, error) {
	registered := false
	for _, page := range m.Pages(ctx) {
		if page.Slug == slug {
			registered = true
			break
		}
	}
	if !registered {
		return models.PageView{}, ErrPageNotFound
	}

	if slug == settings.SetupPageSlug {
		return m.view(slug, SetupView(step), nil), nil
	}
	return m.view(slug, SettingsTemplate, m.settings.Wildcards()), nil
}

// SetupView maps a wizard step to its template.
func SetupView(step string) string {
	switch step {
	case StepGoogleLogin, StepSetupProject, StepFinish:
		return SetupWizardTemplate
	default:
		return SplashTemplate
	}
}

func (m *Menu) view(slug, template string, wildcards models.Wildcards) models.PageView {
	return models.PageView{
		Slug:      slug,
		Template:  template,
		Path:      m.host.Path(path.Join("static", "views", template+".php")),
		Wildcards: wildcards,
	}
}

func setupPage(parent string) models.Page {
	return models.Page{
		Parent:     parent,
		PageTitle:  "Stateless Setup",
		MenuTitle:  "Stateless Setup",
		Capability: models.CapabilityManageOptions,
		Slug:       settings.SetupPageSlug,
	}
}

func settingsPage(parent string) models.Page {
	return models.Page{
		Parent:     parent,
		PageTitle:  "Stateless Settings",
		MenuTitle:  "Stateless Settings",
		Capability: models.CapabilityManageOptions,
		Slug:       settings.SettingsPageSlug,
	}
}
