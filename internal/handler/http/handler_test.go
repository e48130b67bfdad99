// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/mock"
	"github.com/MKhiriev/stateless-settings/internal/service"
	"github.com/MKhiriev/stateless-settings/internal/utils"
	"github.com/MKhiriev/stateless-settings/models"
)

const (
	testSignKey = "sign-key"
	testIssuer  = "stateless-settings"
)

// testHandler holds a real AuthService and mocked remaining services.
type testHandler struct {
	*Handler
	appInfo  *mock.MockAppInfoService
	nonces   *mock.MockNonceService
	settings *mock.MockSettingsService
	router   http.Handler
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		appInfo:  mock.NewMockAppInfoService(ctrl),
		nonces:   mock.NewMockNonceService(ctrl),
		settings: mock.NewMockSettingsService(ctrl),
	}
	th.Handler = NewHandler(&service.Services{
		AuthService: service.NewAuthService(config.App{
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			TokenDuration: time.Hour,
		}, logger.Nop()),
		AppInfoService:  th.appInfo,
		NonceService:    th.nonces,
		SettingsService: th.settings,
	}, logger.Nop())
	th.router = th.Init()
	return th
}

func bearer(t *testing.T, caps ...string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, models.User{UserID: 5, Capabilities: caps}, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.String()
}

// do sends a request through the full router.
func (th *testHandler) do(t *testing.T, method, target, auth string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}

func form(values string) io.Reader {
	return strings.NewReader(values)
}

// requestWithLogger returns a request whose context carries a nop logger,
// as withTraceID would attach.
func requestWithLogger(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(logger.Nop().WithContext(req.Context()))
}
