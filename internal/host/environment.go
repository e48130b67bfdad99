// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import "os"

// OSEnvironment reads the process environment.
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnvironment is a fixed environment, used by tests and the CLI.
type MapEnvironment map[string]string

func (m MapEnvironment) LookupEnv(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}
