// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

// MapConstants is a fixed table of defined constants.
type MapConstants map[string]any

// Lookup returns the value of constant name and whether it is defined.
func (m MapConstants) Lookup(name string) (any, bool) {
	value, ok := m[name]
	return value, ok
}
