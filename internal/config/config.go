// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the settings
// service. It is populated by merging built-in defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, logging and the keys
	// used for nonces and admin tokens.
	App App `envPrefix:"APP_"`

	// Storage holds the option store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Site describes the host installation (multisite flag, URLs, ids).
	Site Site `envPrefix:"SITE_"`

	// Paths holds the host directories probed for the key file.
	Paths Paths `envPrefix:"PATHS_"`

	// Constants points at the defined-constants file.
	Constants Constants `envPrefix:"CONSTANTS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// NonceKey is the HMAC key for settings form nonces.
	// Env: APP_NONCE_KEY
	NonceKey string `env:"NONCE_KEY"`

	// TokenSignKey signs and verifies admin JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of admin tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued admin token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the option store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the option store database.
type DB struct {
	// Driver is "postgres" or "sqlite".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string (a file path for sqlite).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// SiteID selects the rows of the site option table.
	// Env: STORAGE_DB_SITE_ID
	SiteID int64 `env:"SITE_ID"`

	// NetworkID selects the rows of the network option table.
	// Env: STORAGE_DB_NETWORK_ID
	NetworkID int64 `env:"NETWORK_ID"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Site describes the host installation.
type Site struct {
	// Name is the plugin name used in notice titles.
	// Env: SITE_NAME
	Name string `env:"NAME"`

	// Domain is the text domain of translatable strings.
	// Env: SITE_DOMAIN
	Domain string `env:"DOMAIN"`

	// Multisite reports whether the installation is a network.
	// Env: SITE_MULTISITE
	Multisite bool `env:"MULTISITE"`

	// ID is the current site (blog) id.
	// Env: SITE_ID
	ID int64 `env:"ID"`

	// URL is the public site URL.
	// Env: SITE_URL
	URL string `env:"URL"`

	// AdminURL is the base URL of the site admin ("https://example.com/wp-admin/").
	// Env: SITE_ADMIN_URL
	AdminURL string `env:"ADMIN_URL"`

	// NetworkAdminURL is the base URL of the network admin.
	// Env: SITE_NETWORK_ADMIN_URL
	NetworkAdminURL string `env:"NETWORK_ADMIN_URL"`
}

// Paths holds the host directories.
type Paths struct {
	// Root is the CMS root directory.
	// Env: PATHS_ROOT
	Root string `env:"ROOT"`

	// Content is the content directory.
	// Env: PATHS_CONTENT
	Content string `env:"CONTENT"`

	// Uploads is the uploads base directory.
	// Env: PATHS_UPLOADS
	Uploads string `env:"UPLOADS"`

	// Plugin is the plugin root directory.
	// Env: PATHS_PLUGIN
	Plugin string `env:"PLUGIN"`
}

// Constants points at the TOML file holding defined constants.
type Constants struct {
	// File is the path to the constants file. Empty means no constants.
	// Env: CONSTANTS_FILE
	File string `env:"FILE"`

	// Watch reloads the file when it changes on disk.
	// Env: CONSTANTS_WATCH
	Watch bool `env:"WATCH"`
}

// defaults returns the built-in base layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       "dev",
			LogLevel:      "debug",
			TokenIssuer:   "stateless-settings",
			TokenDuration: time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Driver:    DriverSQLite,
				DSN:       "stateless.db",
				SiteID:    1,
				NetworkID: 1,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Site: Site{
			Name:   "WP-Stateless",
			Domain: "stateless-media",
			ID:     1,
		},
	}
}

// Supported option store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. Later sources win for non-zero fields.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
