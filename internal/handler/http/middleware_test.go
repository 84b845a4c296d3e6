// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/mock"
	"github.com/MKhiriev/go-task-tamer/internal/service"
	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/models"
)

// ── gzip ─────────────────────────────────────────────────────────────────────

func TestGZip_CompressesResponse(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", string(body))
}

func TestGZip_DecompressesRequest(t *testing.T) {
	router, m := newTestRouter(t)
	m.sessions.EXPECT().StartSession(gomock.Any(), testUserID, "Gzipped").Return(activeSession(), nil)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"task_name":"Gzipped"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── trace id and logging ─────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, &logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	t.Run("echoes the client id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
	})

	t.Run("generates one", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get(traceIDHeader), 36)
	})
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, &logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short"))
		w.WriteHeader(http.StatusOK)
	})

	buf.Reset()
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/x?y=1", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.Equal(t, "/api/x?y=1", entry["uri"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, 418.0, entry["status"])
	assert.Equal(t, 5.0, entry["size"])
	assert.NotEmpty(t, entry["trace_id"])
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuth_PutsUserIntoContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testUserID}, nil)
	h := NewHandler(&service.Services{AuthService: auth}, logger.Nop())

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetUserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+testToken)
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, seen)
}

func TestUserID_MissingInContext(t *testing.T) {
	_, err := userID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoUserInContext)
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrSessionNotFound, http.StatusNotFound},
		{service.ErrNoActiveSession, http.StatusNotFound},
		{service.ErrActiveSessionExists, http.StatusConflict},
		{service.ErrSessionCompleted, http.StatusConflict},
		{service.ErrUserAlreadyExists, http.StatusConflict},
		{fmt.Errorf("wrapped: %w", service.ErrValidation), http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{ErrTooManyRequests, http.StatusTooManyRequests},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}

func TestWriteError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrSessionNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, service.ErrSessionNotFound.Error(), body.Error)
}
