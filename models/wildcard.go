// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Wildcard is a placeholder token that can appear in the root directory
// template, together with the value it is replaced with.
type Wildcard struct {
	Token       string `json:"token"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Wildcards is an ordered wildcard table. Substitution walks it in order.
type Wildcards []Wildcard
