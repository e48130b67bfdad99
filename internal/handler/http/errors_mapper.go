// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/stateless-settings/internal/admin"
	"github.com/MKhiriev/stateless-settings/internal/app"
	"github.com/MKhiriev/stateless-settings/internal/service"
	"github.com/MKhiriev/stateless-settings/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidForm:       http.StatusBadRequest,
	ErrMissingCapability: http.StatusForbidden,

	admin.ErrPageNotFound: http.StatusNotFound,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrExecutingQuery:     http.StatusServiceUnavailable,
	store.ErrExecutingStatement: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server-side failures
// are not described to the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	var msg string
	switch {
	case status == http.StatusServiceUnavailable:
		msg = app.MsgServiceUnavailable
	case status >= http.StatusInternalServerError:
		msg = app.MsgInternalServerError
	default:
		msg = err.Error()
	}
	http.Error(w, msg, status)
}
