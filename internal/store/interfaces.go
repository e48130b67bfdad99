// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassificator decides whether a failed statement is worth another
// attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
