// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/stateless-settings/models"
)

// probeKeyFile reads the service-account key named by the key-file constant
// or, failing that, by the credentials environment variable.
//
// The path is tried as given, then under the CMS root, the content
// directory, the uploads directory and the plugin root. The first candidate
// that can be read wins. Nothing readable leaves key_json untouched.
func (s *Settings) probeKeyFile() (string, models.Source, bool) {
	var (
		path   string
		source models.Source
	)

	if value, ok := s.Constants.Lookup(KeyFilePathConstant); ok {
		path, source = fmt.Sprint(value), models.SourceConstant
	} else if value, ok := s.Env.LookupEnv(CredentialsEnv); ok {
		path, source = value, models.SourceEnvironment
	} else {
		return "", "", false
	}

	if path == "" {
		return "", "", false
	}

	for _, candidate := range s.keyFileCandidates(path) {
		contents, err := s.readFile(candidate)
		if err != nil {
			continue
		}
		s.logger.Debug().Str("func", "Settings.probeKeyFile").Str("path", candidate).Str("source", string(source)).Msg("key file loaded")
		return string(contents), source, true
	}

	s.logger.Debug().Str("func", "Settings.probeKeyFile").Str("path", path).Msg("key file not found")
	return "", "", false
}

func (s *Settings) keyFileCandidates(path string) []string {
	paths := s.Host.Paths()

	candidates := []string{path}
	for _, base := range []string{paths.Root, paths.Content, paths.Uploads} {
		if base != "" {
			candidates = append(candidates, filepath.Join(base, path))
		}
	}
	return append(candidates, s.Host.Path(path))
}
