// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/models"
)

// OptionStore keeps plugin options in the site table of one site and the
// network table of one network.
//
// Every method obtains a context-scoped logger via [logger.FromContext].
type OptionStore struct {
	db        *DB
	siteID    int64
	networkID int64
}

func NewOptionStore(db *DB, siteID, networkID int64) *OptionStore {
	return &OptionStore{db: db, siteID: siteID, networkID: networkID}
}

func (s *OptionStore) scopeID(scope models.Scope) int64 {
	if scope == models.ScopeNetwork {
		return s.networkID
	}
	return s.siteID
}

// Get returns the stored value of name. A missing row is reported with
// found=false and a nil error.
func (s *OptionStore) Get(ctx context.Context, scope models.Scope, name string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetOptionQuery(s.db.builder, tableFor(scope), s.scopeID(scope), name)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		log.Err(err).
			Str("func", "*OptionStore.Get").
			Stringer("scope", scope).
			Str("option", name).
			Msg("failed to read option")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

// Update inserts or replaces the value of name.
func (s *OptionStore) Update(ctx context.Context, scope models.Scope, name, value string) error {
	query, args, err := buildUpsertOptionQuery(s.db.builder, tableFor(scope), s.scopeID(scope), name, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return s.exec(ctx, "*OptionStore.Update", scope, name, query, args)
}

// Delete removes name. Deleting a missing option is not an error.
func (s *OptionStore) Delete(ctx context.Context, scope models.Scope, name string) error {
	query, args, err := buildDeleteOptionQuery(s.db.builder, tableFor(scope), s.scopeID(scope), name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return s.exec(ctx, "*OptionStore.Delete", scope, name, query, args)
}

// FlushTransients drops the plugin's cached transients from both scopes.
func (s *OptionStore) FlushTransients(ctx context.Context) error {
	var errs []error
	for _, scope := range []models.Scope{models.ScopeSite, models.ScopeNetwork} {
		query, args, err := buildFlushTransientsQuery(s.db.builder, tableFor(scope), s.scopeID(scope))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
			continue
		}
		if err = s.exec(ctx, "*OptionStore.FlushTransients", scope, transientPrefix, query, args); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *OptionStore) exec(ctx context.Context, fn string, scope models.Scope, name, query string, args []any) error {
	if _, err := s.db.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Stringer("scope", scope).
			Str("option", name).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
