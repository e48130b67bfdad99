// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Low-level database operation errors. Option store methods wrap the driver
// error with one of these; match with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the option tables
	// fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails after
	// all retries.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrUnknownDriver is returned by [Connect] for a driver other than
	// postgres or sqlite.
	ErrUnknownDriver = errors.New("unknown database driver")
)
