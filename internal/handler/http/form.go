// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/stateless-settings/models"
)

// Form field names of the settings page.
const (
	formAction = "action"
	formNonce  = "_smnonce"
)

// maxFormBytes bounds a settings submission.
const maxFormBytes = 1 << 20

// parseSaveRequest decodes a settings submission. The admin form posts
// urlencoded sm[<name>] fields; API clients may post a JSON
// [models.SaveRequest] instead.
func parseSaveRequest(w http.ResponseWriter, r *http.Request) (models.SaveRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req models.SaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return models.SaveRequest{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		if req.Values == nil {
			req.Values = map[string]string{}
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return models.SaveRequest{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	req := models.SaveRequest{
		Action: r.PostForm.Get(formAction),
		Nonce:  r.PostForm.Get(formNonce),
		Values: map[string]string{},
	}
	for key, values := range r.PostForm {
		name, ok := settingField(key)
		if !ok || len(values) == 0 {
			continue
		}
		req.Values[name] = values[len(values)-1]
	}

	return req, nil
}

// settingField extracts <name> from "sm[<name>]".
func settingField(key string) (string, bool) {
	name, ok := strings.CutPrefix(key, "sm[")
	if !ok {
		return "", false
	}
	name, ok = strings.CutSuffix(name, "]")
	if !ok || name == "" || strings.ContainsAny(name, "[]") {
		return "", false
	}
	return name, true
}
