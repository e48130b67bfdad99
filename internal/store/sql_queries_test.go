// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stateless-settings/models"
)

var dollar = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Test_tableFor(t *testing.T) {
	require.Equal(t, "options", tableFor(models.ScopeSite).name)
	require.Equal(t, "sitemeta", tableFor(models.ScopeNetwork).name)
}

func Test_buildGetOptionQuery(t *testing.T) {
	tests := []struct {
		name   string
		table  optionTable
		column string
		where  []string
	}{
		{"site", siteOptions, "option_value", []string{"site_id = $1", "option_name = $2"}},
		{"network", networkOptions, "meta_value", []string{"network_id = $1", "meta_key = $2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetOptionQuery(dollar, tt.table, 7, "sm_mode")
			require.NoError(t, err)

			require.True(t, strings.HasPrefix(query, "SELECT "+tt.column+" FROM "+tt.table.name))
			for _, w := range tt.where {
				require.Contains(t, query, w)
			}
			require.Contains(t, query, "LIMIT 1")
			require.Equal(t, []any{int64(7), "sm_mode"}, args)
		})
	}
}

func Test_buildUpsertOptionQuery(t *testing.T) {
	query, args, err := buildUpsertOptionQuery(dollar, siteOptions, 3, "sm_bucket", "media")
	require.NoError(t, err)

	require.Contains(t, query, "INSERT INTO options (site_id,option_name,option_value) VALUES ($1,$2,$3)")
	require.Contains(t, query, "ON CONFLICT (site_id, option_name) DO UPDATE SET option_value = excluded.option_value")
	require.Equal(t, []any{int64(3), "sm_bucket", "media"}, args)
}

func Test_buildUpsertOptionQuery_QuestionPlaceholders(t *testing.T) {
	query, _, err := buildUpsertOptionQuery(sq.StatementBuilder, networkOptions, 1, "sm_key_json", "{}")
	require.NoError(t, err)

	require.Contains(t, query, "VALUES (?,?,?)")
	require.NotContains(t, query, "$1")
}

func Test_buildDeleteOptionQuery(t *testing.T) {
	query, args, err := buildDeleteOptionQuery(dollar, networkOptions, 2, "sm_mode")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(query, "DELETE FROM sitemeta WHERE"))
	require.Contains(t, query, "network_id = $1")
	require.Contains(t, query, "meta_key = $2")
	require.Equal(t, []any{int64(2), "sm_mode"}, args)
}

func Test_likePrefix(t *testing.T) {
	query, args, err := likePrefix("option_name", `50%_off\`).ToSql()
	require.NoError(t, err)

	require.Equal(t, `option_name LIKE ? ESCAPE '\'`, query)
	require.Equal(t, []any{`50\%\_off\\%`}, args)
}

func Test_buildFlushTransientsQuery(t *testing.T) {
	query, args, err := buildFlushTransientsQuery(dollar, siteOptions, 5)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(query, "DELETE FROM options WHERE"))
	require.Contains(t, query, `option_name LIKE $2 ESCAPE '\' OR option_name LIKE $3 ESCAPE '\'`)
	require.Equal(t, []any{int64(5), `\_transient\_wp\_stateless%`, `\_transient\_timeout\_wp\_stateless%`}, args)
}
