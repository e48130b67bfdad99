// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a host:port flag value. The host may be empty, a name or
// an IP address.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or "" when the address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. Ports outside 1..65535 are rejected.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	a.Host = host
	a.Port = port
	return nil
}

// parseFlags parses the server command line.
//
//	-a                server address host:port
//	-driver           option store driver (postgres|sqlite)
//	-d                database DSN
//	-c, -config       JSON config file
//	-constants        defined-constants TOML file
//	-watch-constants  reload the constants file on change
//	-multisite        treat the installation as a network
//	-site-id          current site id
//	-site-url         public site URL
//	-plugin-dir       plugin root directory
//	-uploads-dir      uploads base directory
//	-nonce-key        settings form nonce key
//	-token-sign-key   admin token signing key
//	-token-duration   admin token lifetime (1h, 30m)
//	-request-timeout  request timeout (30s, 1m)
//	-log-level        zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var address NetAddress

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Option store driver (postgres|sqlite)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Constants.File, "constants", "", "Defined constants TOML file")
	fs.BoolVar(&cfg.Constants.Watch, "watch-constants", false, "Reload the constants file on change")
	fs.BoolVar(&cfg.Site.Multisite, "multisite", false, "Multisite installation")
	fs.Int64Var(&cfg.Site.ID, "site-id", 0, "Current site id")
	fs.StringVar(&cfg.Site.URL, "site-url", "", "Public site URL")
	fs.StringVar(&cfg.Paths.Plugin, "plugin-dir", "", "Plugin root directory")
	fs.StringVar(&cfg.Paths.Uploads, "uploads-dir", "", "Uploads base directory")
	fs.StringVar(&cfg.App.NonceKey, "nonce-key", "", "Settings form nonce key")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	return cfg, nil
}

var _ flag.Value = (*NetAddress)(nil)
