// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/stateless-settings/models"
)

const (
	// SaveAction is the form "action" marker of a settings submission.
	SaveAction = "stateless_settings"
	// NonceAction is the action the "_smnonce" field is issued for.
	NonceAction = "wp-stateless-settings"
)

// trimCutset matches the characters the host strips from submitted values.
const trimCutset = " \t\n\r\x00\x0B"

// Save persists a form submission and refreshes the configuration.
//
// A request with a foreign action or a nonce that does not verify is
// ignored: Save returns false and touches nothing. Values go to the network
// table in the network admin and to the site table otherwise. A failing
// write does not stop the remaining ones; all failures are joined.
func (s *Settings) Save(ctx context.Context, req models.SaveRequest) (bool, error) {
	if req.Action != SaveAction || !s.Nonces.Verify(ctx, req.Nonce, NonceAction) {
		return false, nil
	}

	values := cloneValues(req.Values)
	if s.saveFilter != nil {
		values = s.saveFilter(values)
	}

	scope := models.ScopeSite
	if s.Host.IsNetworkAdmin(ctx) {
		scope = models.ScopeNetwork
	}

	var errs []error
	names := slices.Sorted(maps.Keys(values))
	for _, name := range names {
		option, value := "sm_"+name, values[name]

		switch name {
		case OrganizeMedia:
			option = UploadsOrganizeOption
		case KeyJSON:
			value = stripSlashes(value)
		}
		value = strings.Trim(value, trimCutset)

		if err := s.Store.Update(ctx, scope, option, value); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s option %s: %w", ErrWriteOption, scope, option, err))
		}
	}

	if err := s.Flusher.FlushTransients(ctx); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrFlushTransients, err))
	}

	if err := s.Refresh(ctx); err != nil {
		errs = append(errs, err)
	}

	return true, errors.Join(errs...)
}

// stripSlashes removes one level of backslash escaping. "\\0" decodes to a
// NUL byte and a trailing lone backslash is dropped.
func stripSlashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i == len(s) {
			break
		}
		if s[i] == '0' {
			b.WriteByte(0)
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
