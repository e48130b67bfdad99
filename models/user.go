// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Capabilities checked by the settings service.
const (
	CapabilityManageOptions = "manage_options"
	CapabilityManageNetwork = "manage_network"
)

// User is the authenticated administrator issuing a request.
type User struct {
	// UserID is the host user identifier. Zero means anonymous.
	UserID int64 `json:"user_id"`

	// Capabilities granted to the user (e.g. "manage_options").
	Capabilities []string `json:"capabilities"`
}

// Can reports whether the user holds capability.
func (u User) Can(capability string) bool {
	return slices.Contains(u.Capabilities, capability)
}
