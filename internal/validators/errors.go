// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSettingName = errors.New("invalid setting name")
	ErrTooManyValues      = errors.New("too many setting values")
	ErrValueTooLong       = errors.New("setting value is too long")
	ErrActionTooLong      = errors.New("action is too long")
)
