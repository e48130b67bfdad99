// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "github.com/MKhiriev/stateless-settings/models"

// Setting names with special rules.
const (
	Mode             = "mode"
	BodyRewriteTypes = "body_rewrite_types"
	KeyJSON          = "key_json"
	OrganizeMedia    = "organize_media"
	HashifyFileName  = "hashify_file_name"

	HideSettingsPanel  = "hide_settings_panel"
	HideSetupAssistant = "hide_setup_assistant"
)

const (
	// UploadsOrganizeOption is the CMS option behind organize_media.
	UploadsOrganizeOption = "uploads_use_yearmonth_folders"

	// KeyFilePathConstant points at a service-account key file.
	KeyFilePathConstant = "WP_STATELESS_MEDIA_KEY_FILE_PATH"
	// CredentialsEnv is the cloud SDK credentials variable.
	CredentialsEnv = "GOOGLE_APPLICATION_CREDENTIALS"

	// ModeStateless forces hashed file names.
	ModeStateless = "stateless"
)

// GeneralDefinitions returns the per-site settings table.
func GeneralDefinitions() []models.Definition {
	return []models.Definition{
		{Name: Mode, Override: models.SingleConstant("WP_STATELESS_MEDIA_MODE"), Default: models.Scalar("cdn")},
		{Name: "body_rewrite", Override: models.SingleConstant("WP_STATELESS_MEDIA_BODY_REWRITE"), Default: models.Scalar("false")},
		{Name: BodyRewriteTypes, Override: models.SingleConstant("WP_STATELESS_MEDIA_BODY_REWRITE_TYPES"), Default: models.Scalar("jpg jpeg png gif pdf")},
		{Name: "bucket", Override: models.SingleConstant("WP_STATELESS_MEDIA_BUCKET"), Default: models.Scalar("")},
		{
			Name:     "root_dir",
			Override: models.SingleConstant("WP_STATELESS_MEDIA_ROOT_DIR"),
			Default:  models.SiteNetworkPair("/%date_year%/%date_month%/", "/sites/%site_id%/%date_year%/%date_month%/"),
		},
		{Name: KeyJSON, Override: models.SingleConstant("WP_STATELESS_MEDIA_JSON_KEY"), Default: models.Scalar("")},
		{Name: "cache_control", Override: models.SingleConstant("WP_STATELESS_MEDIA_CACHE_CONTROL"), Default: models.Scalar("")},
		{Name: "delete_remote", Override: models.SingleConstant("WP_STATELESS_MEDIA_DELETE_REMOTE"), Default: models.Scalar("true")},
		{Name: "custom_domain", Override: models.SingleConstant("WP_STATELESS_MEDIA_CUSTOM_DOMAIN"), Default: models.Scalar("")},
		{Name: OrganizeMedia, Option: UploadsOrganizeOption, Default: models.Scalar("true")},
		{
			Name:     HashifyFileName,
			Override: models.DeprecatedConstant("WP_STATELESS_MEDIA_HASH_FILENAME", "WP_STATELESS_MEDIA_CACHE_BUSTING"),
			Default:  models.Scalar("false"),
		},
	}
}

// NetworkOnlyDefinitions returns the settings that exist only at network
// level. They hide parts of the admin UI across the whole network.
func NetworkOnlyDefinitions() []models.Definition {
	return []models.Definition{
		{Name: HideSettingsPanel, Override: models.SingleConstant("WP_STATELESS_MEDIA_HIDE_SETTINGS_PANEL"), Default: models.Scalar(false)},
		{Name: HideSetupAssistant, Override: models.SingleConstant("WP_STATELESS_MEDIA_HIDE_SETUP_ASSISTANT"), Default: models.Scalar(false)},
	}
}

// sourceLabels are exposed as sm.strings for the admin form.
func sourceLabels() map[string]any {
	return map[string]any{
		string(models.SourceNetwork):     "Currently configured via Network Settings.",
		string(models.SourceConstant):    "Currently configured via a constant.",
		string(models.SourceEnvironment): "Currently configured via an environment variable.",
	}
}
