// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import "errors"

var (
	// ErrDecodeConstants is returned when the constants file can not be read
	// or is not valid TOML.
	ErrDecodeConstants = errors.New("error decoding constants file")

	// ErrWatchConstants is returned when the watcher for the constants file
	// can not be started.
	ErrWatchConstants = errors.New("error watching constants file")
)
