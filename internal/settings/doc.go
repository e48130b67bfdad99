// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings resolves the effective media-offload configuration.
//
// Every setting starts from its stored site option (or the table default)
// and may be overridden, in increasing priority, by the network option on
// multisite installs and by a defined constant. [Settings.Refresh] rebuilds
// the whole "sm" namespace from scratch, so a constant defined between two
// requests is never masked by a stale value. Alongside each value the
// "sm.readonly" map records which layer won ("constant", "network" or
// "environment"); the admin form uses it to lock fields.
//
// A Settings value is request scoped: build it with [New], call
// [Settings.Load] and discard it when the request ends. Nothing is cached
// between requests; durable state lives in the option store only.
//
// Booleans are turned into the strings "true" and "false" as the last
// step of a refresh, because the admin UI compares strings.
package settings
