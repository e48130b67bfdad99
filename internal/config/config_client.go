// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ErrInvalidClientConfigs indicates a missing API address.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig configures smctl, the command-line client of the settings
// API.
type ClientConfig struct {
	// Address is the base URL of the settings API.
	// Env: SMCTL_ADDRESS
	Address string `env:"SMCTL_ADDRESS"`

	// Token is the bearer token sent with every request.
	// Env: SMCTL_TOKEN
	Token string `env:"SMCTL_TOKEN"`

	// Network targets the network admin routes.
	// Env: SMCTL_NETWORK
	Network bool `env:"SMCTL_NETWORK"`

	// RequestTimeout bounds a single outbound request.
	// Env: SMCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SMCTL_REQUEST_TIMEOUT"`

	// App carries the token keys used to issue tokens locally.
	App App `envPrefix:"APP_"`
}

func clientDefaults() *ClientConfig {
	base := defaults()
	return &ClientConfig{
		Address:        "http://" + base.Server.HTTPAddress,
		RequestTimeout: 10 * time.Second,
		App: App{
			TokenIssuer:   base.App.TokenIssuer,
			TokenDuration: base.App.TokenDuration,
		},
	}
}

// GetClientConfig merges the client defaults, the environment and
// overrides, usually parsed from smctl's flags. Later layers win for
// non-zero fields.
func GetClientConfig(overrides *ClientConfig) (*ClientConfig, error) {
	envCfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, err
	}

	cfg := new(ClientConfig)
	for _, layer := range []*ClientConfig{clientDefaults(), envCfg, overrides} {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if cfg.Address == "" {
		return nil, ErrInvalidClientConfigs
	}

	return cfg, nil
}
