// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		NonceKey      string   `json:"nonce_key"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver    string `json:"driver"`
			DSN       string `json:"dsn"`
			SiteID    int64  `json:"site_id"`
			NetworkID int64  `json:"network_id"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Site struct {
		Name            string `json:"name"`
		Domain          string `json:"domain"`
		Multisite       bool   `json:"multisite"`
		ID              int64  `json:"id"`
		URL             string `json:"url"`
		AdminURL        string `json:"admin_url"`
		NetworkAdminURL string `json:"network_admin_url"`
	} `json:"site,omitempty"`

	Paths struct {
		Root    string `json:"root"`
		Content string `json:"content"`
		Uploads string `json:"uploads"`
		Plugin  string `json:"plugin"`
	} `json:"paths,omitempty"`

	Constants struct {
		File  string `json:"file"`
		Watch bool   `json:"watch"`
	} `json:"constants,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			NonceKey:      jsonCfg.App.NonceKey,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				Driver:    jsonCfg.Storage.DB.Driver,
				DSN:       jsonCfg.Storage.DB.DSN,
				SiteID:    jsonCfg.Storage.DB.SiteID,
				NetworkID: jsonCfg.Storage.DB.NetworkID,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Site: Site{
			Name:            jsonCfg.Site.Name,
			Domain:          jsonCfg.Site.Domain,
			Multisite:       jsonCfg.Site.Multisite,
			ID:              jsonCfg.Site.ID,
			URL:             jsonCfg.Site.URL,
			AdminURL:        jsonCfg.Site.AdminURL,
			NetworkAdminURL: jsonCfg.Site.NetworkAdminURL,
		},
		Paths: Paths{
			Root:    jsonCfg.Paths.Root,
			Content: jsonCfg.Paths.Content,
			Uploads: jsonCfg.Paths.Uploads,
			Plugin:  jsonCfg.Paths.Plugin,
		},
		Constants: Constants{
			File:  jsonCfg.Constants.File,
			Watch: jsonCfg.Constants.Watch,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
