// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into HTTP
// response bodies by the settings API handlers and middleware.
package app

const (
	// MsgInvalidDataProvided is returned when a settings submission cannot
	// be decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidNetworkFlag is returned when the network query parameter of
	// a reset is not a boolean.
	MsgInvalidNetworkFlag = "invalid network flag"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or has expired.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the token lacks the capability the
	// route requires.
	MsgAccessDenied = "access denied"

	// MsgInternalServerError hides unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the option store cannot be
	// reached. Retrying later may succeed.
	MsgServiceUnavailable = "option store unavailable, try again later"
)
