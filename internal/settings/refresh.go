// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stateless-settings/models"
)

// Refresh rebuilds the "sm" namespace from the definition tables, the
// constants, the option store and the key file. The previous namespace is
// dropped, never diffed.
func (s *Settings) Refresh(ctx context.Context) error {
	sm := map[string]any{}
	readonly := map[string]any{}

	for _, def := range s.general {
		value, source, err := s.resolve(ctx, def)
		if err != nil {
			return err
		}
		if source != "" {
			readonly[def.Name] = source
		}
		sm[def.Name] = value
	}

	if sm[Mode] == ModeStateless {
		sm[HashifyFileName] = true
	}

	for _, def := range s.networkOnly {
		value, err := s.resolveNetworkOnly(ctx, def)
		if err != nil {
			return err
		}
		sm[def.Name] = value
	}

	if contents, source, ok := s.probeKeyFile(); ok {
		sm[KeyJSON] = contents
		readonly[KeyJSON] = source
	}

	serialize(sm)
	sm["readonly"] = readonly
	sm["strings"] = sourceLabels()

	s.data["sm"] = sm

	return nil
}

// resolve applies site option, constant and network option to one general
// setting and returns the value with the source that locked it.
func (s *Settings) resolve(ctx context.Context, def models.Definition) (any, models.Source, error) {
	option := def.OptionName()

	value, err := s.option(ctx, models.ScopeSite, option, def.Default.Site)
	if err != nil {
		return nil, "", err
	}

	if def.Name == BodyRewriteTypes && !truthy(value) && !s.Host.IsMultisite() {
		value = def.Default.Site
	}

	var source models.Source
	if constant, ok := s.constant(def.Override); ok {
		value = constant
		source = models.SourceConstant
	}

	if s.Host.IsMultisite() && source == "" {
		network, err := s.option(ctx, models.ScopeNetwork, option, def.Default.Network)
		if err != nil {
			return nil, "", err
		}

		networkAdmin := s.Host.IsNetworkAdmin(ctx)
		if truthy(network) || networkAdmin {
			value = network
			if !networkAdmin {
				source = models.SourceNetwork
			}
		}
	}

	return value, source, nil
}

// resolveNetworkOnly is the reduced precedence of network-only settings:
// constant, else the network option on multisite, else the default.
func (s *Settings) resolveNetworkOnly(ctx context.Context, def models.Definition) (any, error) {
	if value, ok := s.networkConstant(def.Override); ok {
		return value, nil
	}

	if s.Host.IsMultisite() {
		return s.option(ctx, models.ScopeNetwork, def.OptionName(), def.Default.Network)
	}

	return def.Default.Network, nil
}

// option reads name from scope, returning fallback when it is not stored.
func (s *Settings) option(ctx context.Context, scope models.Scope, name string, fallback any) (any, error) {
	value, found, err := s.Store.Get(ctx, scope, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s option %s: %w", ErrReadOption, scope, name, err)
	}
	if !found {
		return fallback, nil
	}
	return value, nil
}

// constant looks up the override of a general setting. Falling back to a
// deprecated name records a notice.
func (s *Settings) constant(override models.Override) (any, bool) {
	value, deprecated, ok := s.lookupOverride(override)
	if ok && deprecated {
		s.Notices.Add(models.Notice{
			Key:     override.Current,
			Title:   fmt.Sprintf("%s: Deprecated Notice (%s)", s.Host.Name(), override.Current),
			Message: fmt.Sprintf("<i>%s</i> constant is deprecated, please use <i>%s</i> instead.", override.Old, override.Current),
		}, models.NoticeLevelNotice)
	}
	return value, ok
}

// networkConstant is constant for network-only settings, which only log
// the deprecation.
func (s *Settings) networkConstant(override models.Override) (any, bool) {
	value, deprecated, ok := s.lookupOverride(override)
	if ok && deprecated {
		s.logger.Warn().
			Str("func", "Settings.networkConstant").
			Str("deprecated", override.Old).
			Str("replacement", override.Current).
			Msgf("%s constant is deprecated, please use %s instead.", override.Old, override.Current)
	}
	return value, ok
}

// lookupOverride checks the current constant name first, then the
// deprecated one.
func (s *Settings) lookupOverride(override models.Override) (value any, deprecated bool, ok bool) {
	switch override.Kind {
	case models.OverrideSingle:
		value, ok = s.Constants.Lookup(override.Current)
		return value, false, ok

	case models.OverrideDeprecated:
		if value, ok = s.Constants.Lookup(override.Current); ok {
			return value, false, true
		}
		if value, ok = s.Constants.Lookup(override.Old); ok {
			return value, true, true
		}
	}

	return nil, false, false
}
