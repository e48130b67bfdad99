// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SettingsSnapshot is the resolved configuration of one request together
// with the notices raised while resolving it.
type SettingsSnapshot struct {
	Settings map[string]any `json:"settings"`
	Notices  []Notice       `json:"notices"`
}

// SaveRequest is a decoded settings form submission: the form action, the
// "_smnonce" field and the sm[...] values keyed by setting name.
type SaveRequest struct {
	Action string            `json:"action"`
	Nonce  string            `json:"nonce"`
	Values map[string]string `json:"values"`
}

// SaveResult reports whether a submission was accepted and the
// configuration after it.
type SaveResult struct {
	Saved bool `json:"saved"`
	SettingsSnapshot
}

// Nonce is a form token issued for an action.
type Nonce struct {
	Action string `json:"action"`
	Nonce  string `json:"nonce"`
}
