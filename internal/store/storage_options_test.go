// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/models"
)

func newTestOptionStore(t *testing.T) (*OptionStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, config.DriverPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop())
	db.backoff = 0
	return NewOptionStore(db, 3, 1), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestOptionStore_Get_Found(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT option_value FROM options")).
		WithArgs(int64(3), "sm_mode").
		WillReturnRows(sqlmock.NewRows([]string{"option_value"}).AddRow("stateless"))

	value, found, err := s.Get(context.Background(), models.ScopeSite, "sm_mode")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "stateless", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionStore_Get_NetworkScopeUsesNetworkID(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT meta_value FROM sitemeta")).
		WithArgs(int64(1), "sm_bucket").
		WillReturnRows(sqlmock.NewRows([]string{"meta_value"}).AddRow("media"))

	value, found, err := s.Get(context.Background(), models.ScopeNetwork, "sm_bucket")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "media", value)
}

func TestOptionStore_Get_Missing(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectQuery("SELECT option_value").
		WillReturnError(sql.ErrNoRows)

	value, found, err := s.Get(context.Background(), models.ScopeSite, "sm_mode")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestOptionStore_Get_QueryError(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectQuery("SELECT option_value").
		WillReturnError(errors.New("connection reset"))

	_, found, err := s.Get(context.Background(), models.ScopeSite, "sm_mode")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.False(t, found)
}

// ── Update / Delete ───────────────────────────────────────────────────────────

func TestOptionStore_Update(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sitemeta (network_id,meta_key,meta_value)")).
		WithArgs(int64(1), "sm_mode", "cdn").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Update(context.Background(), models.ScopeNetwork, "sm_mode", "cdn"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionStore_Update_RetriesTransientError(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectExec("INSERT INTO options").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO options").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Update(context.Background(), models.ScopeSite, "sm_mode", "cdn"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionStore_Update_GivesUpAfterAttempts(t *testing.T) {
	s, mock := newTestOptionStore(t)

	for range defaultAttempts {
		mock.ExpectExec("INSERT INTO options").
			WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	err := s.Update(context.Background(), models.ScopeSite, "sm_mode", "cdn")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestOptionStore_Update_NoBackoffAfterLastAttempt verifies that the last
// failed attempt returns the database error without sleeping first.
func TestOptionStore_Update_NoBackoffAfterLastAttempt(t *testing.T) {
	s, mock := newTestOptionStore(t)
	s.db.attempts = 1
	s.db.backoff = time.Hour

	mock.ExpectExec("INSERT INTO options").
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := s.Update(ctx, models.ScopeSite, "sm_mode", "cdn")

	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgerrcode.SerializationFailure, pgErr.Code)
	assert.NoError(t, ctx.Err())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionStore_Update_PermanentErrorNotRetried(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectExec("INSERT INTO options").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := s.Update(context.Background(), models.ScopeSite, "sm_mode", "cdn")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionStore_Delete(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM options WHERE site_id = $1 AND option_name = $2")).
		WithArgs(int64(3), "sm_bucket").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), models.ScopeSite, "sm_bucket"))
}

// ── FlushTransients ───────────────────────────────────────────────────────────

func TestOptionStore_FlushTransients_BothScopes(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectExec("DELETE FROM options").
		WithArgs(int64(3), `\_transient\_wp\_stateless%`, `\_transient\_timeout\_wp\_stateless%`).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM sitemeta").
		WithArgs(int64(1), `\_transient\_wp\_stateless%`, `\_transient\_timeout\_wp\_stateless%`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.FlushTransients(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionStore_FlushTransients_ContinuesAfterFailure(t *testing.T) {
	s, mock := newTestOptionStore(t)

	mock.ExpectExec("DELETE FROM options").
		WillReturnError(pgError(pgerrcode.InsufficientPrivilege))
	mock.ExpectExec("DELETE FROM sitemeta").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.FlushTransients(context.Background())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── classifiers ───────────────────────────────────────────────────────────────

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := SQLiteErrorClassifier{}

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

// ── Connect ───────────────────────────────────────────────────────────────────

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

// TestOptionStore_SQLiteRoundTrip runs the store against a migrated
// in-memory SQLite database.
func TestOptionStore_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	s := NewOptionStore(db, 1, 1)

	_, found, err := s.Get(ctx, models.ScopeSite, "sm_mode")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Update(ctx, models.ScopeSite, "sm_mode", "cdn"))
	require.NoError(t, s.Update(ctx, models.ScopeSite, "sm_mode", "stateless"))
	require.NoError(t, s.Update(ctx, models.ScopeNetwork, "sm_mode", "backup"))
	require.NoError(t, s.Update(ctx, models.ScopeSite, "_transient_wp_stateless_cache", "x"))
	require.NoError(t, s.Update(ctx, models.ScopeSite, "xtransient_wp_stateless_keep", "y"))

	value, found, err := s.Get(ctx, models.ScopeSite, "sm_mode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "stateless", value)

	value, _, err = s.Get(ctx, models.ScopeNetwork, "sm_mode")
	require.NoError(t, err)
	assert.Equal(t, "backup", value)

	require.NoError(t, s.FlushTransients(ctx))
	_, found, err = s.Get(ctx, models.ScopeSite, "_transient_wp_stateless_cache")
	require.NoError(t, err)
	assert.False(t, found)
	value, found, err = s.Get(ctx, models.ScopeSite, "xtransient_wp_stateless_keep")
	require.NoError(t, err)
	assert.True(t, found, "only real transients are flushed")
	assert.Equal(t, "y", value)

	require.NoError(t, s.Delete(ctx, models.ScopeSite, "sm_mode"))
	_, found, err = s.Get(ctx, models.ScopeSite, "sm_mode")
	require.NoError(t, err)
	assert.False(t, found)
}
