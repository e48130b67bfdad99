// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/stateless-settings/models"
)

var (
	rootDirDisallowed = regexp.MustCompile(`[^A-Za-z0-9/]`)
	rootDirSeparators = regexp.MustCompile(`/+`)
)

// Wildcards returns the root directory wildcard table after the wildcard
// filter.
func (s *Settings) Wildcards() models.Wildcards {
	wildcards := s.defaultWildcards()
	if s.wildcardFilter != nil {
		wildcards = s.wildcardFilter(wildcards)
	}
	return wildcards
}

// RootDirWildcards substitutes the filtered wildcard table into template.
func (s *Settings) RootDirWildcards(template string) string {
	return SubstituteWildcards(template, s.Wildcards())
}

// SubstituteWildcards replaces every token of wildcards in template, then
// keeps only letters, digits and slashes, collapses repeated slashes and
// trims slashes and spaces from both ends.
func SubstituteWildcards(template string, wildcards models.Wildcards) string {
	for _, w := range wildcards {
		if w.Token == "" {
			continue
		}
		template = strings.ReplaceAll(template, w.Token, w.Value)
	}

	template = rootDirDisallowed.ReplaceAllString(template, "")
	template = rootDirSeparators.ReplaceAllString(template, "/")
	return strings.Trim(template, "/ ")
}

func (s *Settings) defaultWildcards() models.Wildcards {
	now := s.now()
	site := s.Host.Site()

	var host, path string
	if u, err := url.Parse(site.URL); err == nil {
		host, path = u.Host, u.Path
	}

	return models.Wildcards{
		{
			Token:       "%date_year%",
			Value:       now.Format("2006"),
			Label:       "year",
			Description: "The year of the post, four digits, for example 2004.",
		},
		{
			Token:       "%date_month%",
			Value:       now.Format("01"),
			Label:       "monthnum",
			Description: "Month of the year, for example 05.",
		},
		{
			Token:       "%site_id%",
			Value:       strconv.FormatInt(site.ID, 10),
			Label:       "site id",
			Description: "Site ID, for example 1.",
		},
		{
			Token:       "%site_url%",
			Value:       strings.Trim(host+path, "/ "),
			Label:       "site url",
			Description: "Site URL, for example example.com/site-1.",
		},
		{
			Token:       "%site_url_host%",
			Value:       strings.Trim(host, "/ "),
			Label:       "host name",
			Description: "Host name, for example example.com.",
		},
		{
			Token:       "%site_url_path%",
			Value:       strings.Trim(path, "/ "),
			Label:       "site path",
			Description: "Site path, for example site-1.",
		},
	}
}
