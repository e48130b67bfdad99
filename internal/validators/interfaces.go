// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound requests before they
// reach the services.
//
// Validators answer structural questions only (well-formed field names,
// bounded sizes). Whether a submission is allowed at all is decided by the
// settings layer.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
