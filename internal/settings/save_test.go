// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/stateless-settings/models"
)

func validSave(values map[string]string) models.SaveRequest {
	return models.SaveRequest{Action: SaveAction, Nonce: "nonce", Values: values}
}

// ── guards ────────────────────────────────────────────────────────────────────

func TestSave_WrongActionIsNoop(t *testing.T) {
	f := newFixture(t)
	s := f.settings()

	saved, err := s.Save(context.Background(), models.SaveRequest{Action: "other", Nonce: "nonce", Values: map[string]string{"mode": "backup"}})

	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSave_InvalidNonceIsNoop(t *testing.T) {
	f := newFixture(t)
	f.nonces.EXPECT().Verify(gomock.Any(), "forged", NonceAction).Return(false)
	s := f.settings()

	saved, err := s.Save(context.Background(), models.SaveRequest{Action: SaveAction, Nonce: "forged", Values: map[string]string{"mode": "backup"}})

	require.NoError(t, err)
	assert.False(t, saved)
}

// ── persistence ───────────────────────────────────────────────────────────────

func TestSave_SiteScope(t *testing.T) {
	f := newFixture(t)
	f.backStore()
	f.nonces.EXPECT().Verify(gomock.Any(), "nonce", NonceAction).Return(true)
	f.flusher.EXPECT().FlushTransients(gomock.Any()).Return(nil)
	s := f.settings()

	saved, err := s.Save(context.Background(), validSave(map[string]string{
		"mode":           "  backup\n",
		"organize_media": "0",
		"key_json":       ` {\"type\":\"service_account\"} `,
		"bucket":         "\x00media\x0B",
	}))

	require.NoError(t, err)
	assert.True(t, saved)

	assert.Equal(t, "backup", f.site["sm_mode"])
	assert.Equal(t, "0", f.site[UploadsOrganizeOption])
	assert.NotContains(t, f.site, "sm_organize_media")
	assert.Equal(t, `{"type":"service_account"}`, f.site["sm_key_json"])
	assert.Equal(t, "media", f.site["sm_bucket"])
	assert.Empty(t, f.network)

	assert.Equal(t, "backup", s.Value(Mode), "refresh reflects the save")
	assert.Equal(t, "0", s.Value(OrganizeMedia))
	assert.Equal(t, `{"type":"service_account"}`, s.Value(KeyJSON))
}

func TestSave_NetworkScope(t *testing.T) {
	f := newFixture(t)
	f.multisite = true
	f.backStore()
	f.nonces.EXPECT().Verify(gomock.Any(), "nonce", NonceAction).Return(true)
	f.flusher.EXPECT().FlushTransients(gomock.Any()).Return(nil)
	s := f.settings()

	saved, err := s.Save(networkAdmin(), validSave(map[string]string{"mode": "backup"}))

	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, "backup", f.network["sm_mode"])
	assert.Empty(t, f.site)

	assert.Equal(t, "backup", s.Value(Mode))
	_, locked := s.ReadOnly(Mode)
	assert.False(t, locked, "editable in the network admin")
}

func TestSave_AppliesFilter(t *testing.T) {
	f := newFixture(t)
	f.backStore()
	f.nonces.EXPECT().Verify(gomock.Any(), "nonce", NonceAction).Return(true)
	f.flusher.EXPECT().FlushTransients(gomock.Any()).Return(nil)

	var seen map[string]string
	s := f.settings(WithSaveFilter(func(values map[string]string) map[string]string {
		seen = values
		delete(values, "bucket")
		values["custom_domain"] = "cdn.example.com"
		return values
	}))

	input := map[string]string{"bucket": "dropped"}
	_, err := s.Save(context.Background(), validSave(input))

	require.NoError(t, err)
	assert.Equal(t, "dropped", input["bucket"], "caller's map is not mutated")
	assert.NotNil(t, seen)
	assert.NotContains(t, f.site, "sm_bucket")
	assert.Equal(t, "cdn.example.com", f.site["sm_custom_domain"])
}

func TestSave_WriteErrorsAreJoined(t *testing.T) {
	f := newFixture(t)
	f.nonces.EXPECT().Verify(gomock.Any(), "nonce", NonceAction).Return(true)
	f.store.EXPECT().Update(gomock.Any(), models.ScopeSite, "sm_bucket", "b").Return(errors.New("disk full"))
	f.store.EXPECT().Update(gomock.Any(), models.ScopeSite, "sm_mode", "backup").Return(nil)
	f.store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, nil).AnyTimes()
	f.flusher.EXPECT().FlushTransients(gomock.Any()).Return(errors.New("cache down"))
	s := f.settings()

	saved, err := s.Save(context.Background(), validSave(map[string]string{"mode": "backup", "bucket": "b"}))

	assert.True(t, saved)
	assert.ErrorIs(t, err, ErrWriteOption)
	assert.ErrorIs(t, err, ErrFlushTransients)
}

func TestSave_FlushBeforeRefresh(t *testing.T) {
	f := newFixture(t)
	f.nonces.EXPECT().Verify(gomock.Any(), "nonce", NonceAction).Return(true)
	gomock.InOrder(
		f.store.EXPECT().Update(gomock.Any(), models.ScopeSite, "sm_mode", "backup").Return(nil),
		f.flusher.EXPECT().FlushTransients(gomock.Any()).Return(nil),
		f.store.EXPECT().Get(gomock.Any(), models.ScopeSite, "sm_mode").Return("backup", true, nil),
	)
	f.store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, nil).AnyTimes()
	s := f.settings()

	_, err := s.Save(context.Background(), validSave(map[string]string{"mode": "backup"}))

	require.NoError(t, err)
	assert.Equal(t, "backup", s.Value(Mode))
}

// ── stripSlashes ──────────────────────────────────────────────────────────────

func TestStripSlashes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`\"quoted\"`, `"quoted"`},
		{`a\\b`, `a\b`},
		{`\n`, "n"},
		{`\0`, "\x00"},
		{`trailing\`, "trailing"},
		{`{\"private_key\":\"-----BEGIN\\nKEY\"}`, `{"private_key":"-----BEGIN\nKEY"}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stripSlashes(tt.in), tt.in)
	}
}
