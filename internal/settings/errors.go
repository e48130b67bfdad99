// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "errors"

var (
	// ErrReadOption is returned when the option store fails on a read
	// during a refresh.
	ErrReadOption = errors.New("error reading option")

	// ErrWriteOption is returned when a save could not persist a value.
	ErrWriteOption = errors.New("error writing option")

	// ErrDeleteOption is returned when a reset could not delete an option.
	// Reset keeps deleting the remaining options and joins the failures.
	ErrDeleteOption = errors.New("error deleting option")

	// ErrFlushTransients is returned when cached plugin state could not be
	// invalidated after a save.
	ErrFlushTransients = errors.New("error flushing transients")
)
