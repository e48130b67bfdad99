// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the REST transport of the settings service.
//
// Two route trees expose the same endpoints: /api for site administrators
// and /network/api for the network admin of a multisite installation.
// Tracing, access logging, compression and bearer-token authentication are
// handled here before requests reach the service layer.
package http
