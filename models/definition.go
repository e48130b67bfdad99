// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OverrideKind tells which shape of override constant a [Definition] uses.
type OverrideKind int

const (
	// OverrideNone means the setting can not be overridden by a constant.
	OverrideNone OverrideKind = iota
	// OverrideSingle is a single constant name.
	OverrideSingle
	// OverrideDeprecated pairs a deprecated constant name with its
	// current replacement. The current name always wins.
	OverrideDeprecated
)

// Override is the constant-name specifier of a setting.
//
// Build it with [SingleConstant], [DeprecatedConstant] or leave it zero
// for settings that have no constant override.
type Override struct {
	Kind    OverrideKind
	Current string
	Old     string
}

// SingleConstant returns an override checked under one constant name.
func SingleConstant(name string) Override {
	return Override{Kind: OverrideSingle, Current: name}
}

// DeprecatedConstant returns an override checked under current first and
// under old afterwards. Using old produces a deprecation notice.
func DeprecatedConstant(old, current string) Override {
	return Override{Kind: OverrideDeprecated, Current: current, Old: old}
}

// Default is the fallback value of a setting. Site and Network differ only
// for multisite-aware settings.
type Default struct {
	Site    any
	Network any
}

// Scalar returns a default that is the same for site and network scope.
func Scalar(v any) Default {
	return Default{Site: v, Network: v}
}

// SiteNetworkPair returns a multisite-aware default.
func SiteNetworkPair(site, network any) Default {
	return Default{Site: site, Network: network}
}

// Definition is one entry of a settings definition table.
type Definition struct {
	// Name is the key under the "sm" namespace (e.g. "mode").
	Name string
	// Option is the storage key in the option tables. Empty means
	// "sm_" + Name.
	Option   string
	Override Override
	Default  Default
}

// OptionName returns the storage key for d.
func (d Definition) OptionName() string {
	if d.Option != "" {
		return d.Option
	}
	return "sm_" + d.Name
}

// Source records which layer overrode a setting's default.
type Source string

const (
	SourceConstant    Source = "constant"
	SourceNetwork     Source = "network"
	SourceEnvironment Source = "environment"
)

// Scope selects the site or the network option table.
type Scope int

const (
	ScopeSite Scope = iota
	ScopeNetwork
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	if s == ScopeNetwork {
		return "network"
	}
	return "site"
}
