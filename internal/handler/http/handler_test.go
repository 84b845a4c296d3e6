package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/mock"
	"github.com/MKhiriev/go-task-tamer/internal/service"
	"github.com/MKhiriev/go-task-tamer/models"
)

const (
	testToken  = "good-token"
	testUserID = "user-1"
)

type serviceMocks struct {
	auth      *mock.MockAuthService
	sessions  *mock.MockWorkSessionService
	earnings  *mock.MockEarningsService
	analytics *mock.MockAnalyticsService
	appInfo   *mock.MockAppInfoService
}

// newTestRouter builds the full router over gomock services. testToken is
// accepted as a token of testUserID.
func newTestRouter(t *testing.T, opts ...Option) (http.Handler, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		auth:      mock.NewMockAuthService(ctrl),
		sessions:  mock.NewMockWorkSessionService(ctrl),
		earnings:  mock.NewMockEarningsService(ctrl),
		analytics: mock.NewMockAnalyticsService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: testUserID}, nil).AnyTimes()

	h := NewHandler(&service.Services{
		AuthService:        m.auth,
		WorkSessionService: m.sessions,
		EarningsService:    m.earnings,
		AnalyticsService:   m.analytics,
		AppInfoService:     m.appInfo,
	}, logger.Nop(), opts...)

	return h.Init(), m
}

// serve sends an authorized request unless the path starts with
// /api/auth/register, /api/auth/login or /api/version.
func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler_Options(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop(), WithRequestTimeout(time.Second), WithRateLimiter(nil))

	require.NotNil(t, h)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.Nil(t, h.rateLimiter)
}

func TestRoutes_Version(t *testing.T) {
	router, m := newTestRouter(t, WithRequestTimeout(time.Second))
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method, path string
		allow        string
	}{
		{http.MethodDelete, "/api/version", "GET"},
		{http.MethodGet, "/api/auth/login", "POST"},
		{http.MethodPut, "/api/earnings", "GET, POST"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.path, "")

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.allow, rec.Header().Get("Allow"))
			assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
