// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNonceKeyIsNotSpecified = errors.New("nonce key is not specified")

	// ErrLoadSettings wraps a failure to resolve the configuration of a
	// request.
	ErrLoadSettings = errors.New("error loading settings")
	// ErrSaveSettings wraps store failures during a save.
	ErrSaveSettings = errors.New("error saving settings")
	// ErrResetSettings wraps store failures during a reset.
	ErrResetSettings = errors.New("error resetting settings")
)
