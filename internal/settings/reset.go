// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/stateless-settings/models"
)

// Reset deletes the stored options of both tables and refreshes back to
// the defaults. organize_media is never deleted because it belongs to the
// CMS.
//
// With network set and the manage_network capability the network table is
// cleared as well, including the network-only settings. Without the
// capability only the site table is cleared.
func (s *Settings) Reset(ctx context.Context, network bool) error {
	networkReset := network && s.Host.CurrentUserCan(ctx, models.CapabilityManageNetwork)
	if network && !networkReset {
		s.logger.Warn().Str("func", "Settings.Reset").Msg("network reset requested without manage_network, clearing site options only")
	}

	var errs []error
	deleteOption := func(scope models.Scope, option string) {
		if err := s.Store.Delete(ctx, scope, option); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s option %s: %w", ErrDeleteOption, scope, option, err))
		}
	}

	for _, def := range s.general {
		if def.Name == OrganizeMedia {
			continue
		}
		if networkReset {
			deleteOption(models.ScopeNetwork, def.OptionName())
		}
		deleteOption(models.ScopeSite, def.OptionName())
	}

	if networkReset {
		for _, def := range s.networkOnly {
			deleteOption(models.ScopeNetwork, def.OptionName())
			deleteOption(models.ScopeSite, def.OptionName())
		}
	}

	s.data["sm"] = map[string]any{}

	if err := s.Refresh(ctx); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
