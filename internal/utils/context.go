// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the transport and service
// layers: typed context keys, HMAC hashing, JWT helpers, JSON responses and
// the HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/stateless-settings/models"
)

// contextKey is a private type for context keys, so keys never collide with
// string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserCtxKey stores the authenticated [models.User].
	UserCtxKey = contextKey("user")

	// NetworkAdminCtxKey marks a request served from the network admin.
	NetworkAdminCtxKey = contextKey("networkAdmin")
)

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext returns the user stored by WithUser.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetUserIDFromContext returns the id of the user stored by WithUser.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := GetUserFromContext(ctx)
	return user.UserID, ok
}

// WithNetworkAdmin returns a copy of ctx flagged as network-admin context.
func WithNetworkAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, NetworkAdminCtxKey, true)
}

// IsNetworkAdmin reports whether ctx was flagged by WithNetworkAdmin.
func IsNetworkAdmin(ctx context.Context) bool {
	flag, _ := ctx.Value(NetworkAdminCtxKey).(bool)
	return flag
}
