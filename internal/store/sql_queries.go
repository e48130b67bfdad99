// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/stateless-settings/models"
)

// Transient option name prefixes of the plugin, with and without the
// timeout marker.
const (
	transientPrefix        = "_transient_wp_stateless"
	transientTimeoutPrefix = "_transient_timeout_wp_stateless"
)

// optionTable describes the columns of one scope's option table.
type optionTable struct {
	name        string
	idColumn    string
	keyColumn   string
	valueColumn string
}

var (
	siteOptions = optionTable{
		name:        "options",
		idColumn:    "site_id",
		keyColumn:   "option_name",
		valueColumn: "option_value",
	}
	networkOptions = optionTable{
		name:        "sitemeta",
		idColumn:    "network_id",
		keyColumn:   "meta_key",
		valueColumn: "meta_value",
	}
)

func tableFor(scope models.Scope) optionTable {
	if scope == models.ScopeNetwork {
		return networkOptions
	}
	return siteOptions
}

func buildGetOptionQuery(b sq.StatementBuilderType, t optionTable, id int64, name string) (string, []any, error) {
	return b.Select(t.valueColumn).
		From(t.name).
		Where(sq.Eq{t.idColumn: id}).
		Where(sq.Eq{t.keyColumn: name}).
		Limit(1).
		ToSql()
}

func buildUpsertOptionQuery(b sq.StatementBuilderType, t optionTable, id int64, name, value string) (string, []any, error) {
	return b.Insert(t.name).
		Columns(t.idColumn, t.keyColumn, t.valueColumn).
		Values(id, name, value).
		Suffix(fmt.Sprintf("ON CONFLICT (%s, %s) DO UPDATE SET %s = excluded.%s",
			t.idColumn, t.keyColumn, t.valueColumn, t.valueColumn)).
		ToSql()
}

func buildDeleteOptionQuery(b sq.StatementBuilderType, t optionTable, id int64, name string) (string, []any, error) {
	return b.Delete(t.name).
		Where(sq.Eq{t.idColumn: id}).
		Where(sq.Eq{t.keyColumn: name}).
		ToSql()
}

func buildFlushTransientsQuery(b sq.StatementBuilderType, t optionTable, id int64) (string, []any, error) {
	return b.Delete(t.name).
		Where(sq.Eq{t.idColumn: id}).
		Where(sq.Or{
			likePrefix(t.keyColumn, transientPrefix),
			likePrefix(t.keyColumn, transientTimeoutPrefix),
		}).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePrefix matches column values starting with prefix. Wildcards inside
// prefix are escaped, the '_' of option names included.
func likePrefix(column, prefix string) sq.Sqlizer {
	return sq.Expr(column+` LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%")
}
