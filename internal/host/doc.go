// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package host describes the installation the settings are resolved for.
//
// [Bootstrap] carries the plugin identity, the multisite flag, the admin
// URLs and the directories probed for the key file. It is built once from
// configuration and handed to the settings and admin packages instead of
// being fetched from global state. Request-specific facts, such as whether
// the caller is in the network admin or which capabilities it holds, are
// read from the request context.
//
// Defined constants come from [MapConstants] or from a TOML file loaded by
// [FileConstants], which can watch the file and pick up edits without a
// restart. [OSEnvironment] exposes the process environment.
package host
